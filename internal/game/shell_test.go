package game_test

import (
	"context"
	"slices"

	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/game"
	"github.com/27achang/2024WinterFinal/internal/models"
)

var errScriptDone = errors.NewSentinel("script done")

// scriptedShell plays a fixed list of commands and free choice answers, recording everything the engine shows.
type scriptedShell struct {
	commands []models.Command
	choices  []string

	// pick chooses a command when commands runs out. Nil ends the script.
	pick func(legal []models.Command) models.Command

	snapshots []game.Snapshot
	offered   [][]models.Command
	narration []string
	results   []string
	acks      int
}

func (s *scriptedShell) RenderBoard(snapshot game.Snapshot) {
	s.snapshots = append(s.snapshots, snapshot)
}

func (s *scriptedShell) Narrate(text string) {
	s.narration = append(s.narration, text)
}

func (s *scriptedShell) PromptCommand(_ context.Context, _ string, legal []models.Command) (models.Command, error) {
	s.offered = append(s.offered, legal)
	if len(s.commands) == 0 {
		if s.pick == nil {
			return models.CommandUnspecified, errScriptDone
		}
		return s.pick(legal), nil
	}
	cmd := s.commands[0]
	s.commands = s.commands[1:]
	if !slices.Contains(legal, cmd) {
		return models.CommandUnspecified, errors.New("scripted command is not legal")
	}
	return cmd, nil
}

func (s *scriptedShell) PromptFreeChoice(_ context.Context, _ string, allowed []string) (string, error) {
	if len(s.choices) == 0 {
		return allowed[0], nil
	}
	choice := s.choices[0]
	s.choices = s.choices[1:]
	if !slices.Contains(allowed, choice) {
		return "", errors.New("scripted choice is not allowed")
	}
	return choice, nil
}

func (s *scriptedShell) ShowResultBlock(text string) {
	s.results = append(s.results, text)
}

func (s *scriptedShell) AwaitAcknowledgement(context.Context) error {
	s.acks++
	return nil
}
