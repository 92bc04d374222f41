package game

import (
	"context"
	"log/slog"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/evidence"
	"github.com/27achang/2024WinterFinal/internal/logging"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/random"
)

// Shell is the host the engine plays through. Prompts block until the player answers.
type Shell interface {
	// RenderBoard draws the mansion and the detective before a prompt.
	RenderBoard(snapshot Snapshot)
	// Narrate shows a piece of story text.
	Narrate(text string)
	// PromptCommand returns one of legal.
	PromptCommand(ctx context.Context, prompt string, legal []models.Command) (models.Command, error)
	// PromptFreeChoice returns one of allowed.
	PromptFreeChoice(ctx context.Context, prompt string, allowed []string) (string, error)
	// ShowResultBlock shows a lab result.
	ShowResultBlock(text string)
	// AwaitAcknowledgement blocks until the player confirms they have read the result.
	AwaitAcknowledgement(ctx context.Context) error
}

// Engine plays one game.
type Engine struct {
	logger *slog.Logger
	board  *board.Board
	shell  Shell
	src    random.Source
	state  *State
}

// NewEngine creates an engine for state.
func NewEngine(logger *slog.Logger, b *board.Board, shell Shell, src random.Source, state *State) *Engine {
	return &Engine{
		logger: logger.With(slog.String("source", "Engine")),
		board:  b,
		shell:  shell,
		src:    src,
		state:  state,
	}
}

// State returns the game being played.
func (e *Engine) State() *State {
	return e.state
}

// Run plays turns until the detective accuses someone or runs out of time. Errors only come from the shell.
func (e *Engine) Run(ctx context.Context) (models.Outcome, error) {
	s := e.state
	if s.Over {
		return s.Outcome, ErrGameOver
	}
	ctx = logging.WithAttrs(ctx, slog.String("game_id", s.ID.String()))
	e.logger.LogAttrs(ctx, slog.LevelDebug, "case generated",
		slog.String("suspect", s.Answer.Suspect.String()),
		slog.String("weapon", s.Answer.Weapon.String()),
		slog.String("room", s.Answer.Room.String()),
		slog.Int("camera_cost", s.CameraCost),
	)

	for {
		over, err := e.Step(ctx)
		if err != nil {
			return models.Outcome{}, err
		}
		if over {
			return s.Outcome, nil
		}
	}
}

// Step plays one turn. It returns true when the game ended on this turn.
func (e *Engine) Step(ctx context.Context) (bool, error) {
	s := e.state
	if s.Over {
		return true, ErrGameOver
	}

	if err := e.deliverResult(ctx); err != nil {
		return false, err
	}

	legal := LegalCommands(e.board, s)
	e.shell.RenderBoard(s.Snapshot())
	cmd, err := e.shell.PromptCommand(ctx, "What would you like to do?", legal)
	if err != nil {
		return false, errors.Wrap(err, "prompt command", slog.Int("turn", s.Stats.Turns))
	}

	text, accused, err := e.apply(ctx, cmd)
	if err != nil {
		return false, err
	}
	if text != "" {
		e.shell.Narrate(text)
	}

	s.Stats.Turns++
	if !cmd.IsView() {
		s.Stats.ActionableTurns++
		s.Lab.Tick(submissionKind(cmd))
	}

	switch {
	case accused != nil:
		e.finish(ctx, Score(*accused, s.Answer, s.Stats))
	case s.Stats.ActionableTurns > MaxActionableTurns:
		e.finish(ctx, TimedOut(s.Answer, s.Stats))
	default:
		return false, nil
	}
	return true, nil
}

func (e *Engine) finish(ctx context.Context, outcome models.Outcome) {
	e.state.Over = true
	e.state.Outcome = outcome
	e.logger.LogAttrs(ctx, slog.LevelInfo, "game over",
		slog.String("result", string(outcome.Result)),
		slog.Int("correct", outcome.CorrectCount()),
		slog.Int("turns", outcome.Stats.Turns),
		slog.Int("actionable_turns", outcome.Stats.ActionableTurns),
	)
}

// deliverResult shows at most one finished lab analysis.
func (e *Engine) deliverResult(ctx context.Context) error {
	s := e.state
	res, ok := s.Lab.Deliver()
	if !ok {
		return nil
	}
	e.logger.LogAttrs(ctx, slog.LevelDebug, "result delivered", slog.String("kind", res.Kind.String()))
	s.addLog(res.Text)
	e.shell.ShowResultBlock("Detective Joseph: " + res.Text)
	if err := e.shell.AwaitAcknowledgement(ctx); err != nil {
		return errors.Wrap(err, "await acknowledgement", slog.String("kind", res.Kind.String()))
	}
	return nil
}

// apply runs cmd. A non-nil accusation ends the game.
func (e *Engine) apply(ctx context.Context, cmd models.Command) (string, *models.Answer, error) {
	s := e.state
	switch cmd {
	case models.CommandUp, models.CommandDown, models.CommandLeft, models.CommandRight:
		d, _ := board.DirectionOf(cmd)
		return Move(e.board, s, d), nil, nil
	case models.CommandPass:
		return Pass(e.board, s), nil, nil
	case models.CommandSearch:
		return Search(s, e.src), nil, nil
	case models.CommandCollectDNA:
		return CollectDNA(s, e.src), nil, nil
	case models.CommandCollectFingerprints:
		return CollectFingerprints(s, e.src), nil, nil
	case models.CommandUVScan:
		return ScanUV(s), nil, nil
	case models.CommandSubmitDNA:
		e.logger.LogAttrs(ctx, slog.LevelDebug, "submitting dna", slog.Int("donuts", s.Inventory.Donuts))
		return SubmitDNA(s), nil, nil
	case models.CommandSubmitFingerprints:
		e.logger.LogAttrs(ctx, slog.LevelDebug, "submitting fingerprints", slog.Int("donuts", s.Inventory.Donuts))
		return SubmitFingerprints(s), nil, nil
	case models.CommandRequestCamera:
		return e.requestCamera(ctx)
	case models.CommandAccuse:
		guess, err := e.accuse(ctx)
		if err != nil {
			return "", nil, err
		}
		return "", &guess, nil
	case models.CommandDiscardDNA:
		return e.discard(ctx, "your DNA sample", DiscardDNA)
	case models.CommandDiscardFingerprints:
		return e.discard(ctx, "your fingerprints", DiscardFingerprints)
	case models.CommandInventory:
		return InventoryText(s), nil, nil
	case models.CommandLog:
		return LogText(s), nil, nil
	case models.CommandUnspecified:
		return "", nil, nil
	default:
		return "", nil, nil
	}
}

func (e *Engine) requestCamera(ctx context.Context) (string, *models.Answer, error) {
	s := e.state
	if declined := CanRequestCamera(s); declined != "" {
		return declined, nil, nil
	}
	name, err := e.shell.PromptFreeChoice(ctx, "Which room's cameras should Joseph pull?", roomNames())
	if err != nil {
		return "", nil, errors.Wrap(err, "prompt camera target")
	}
	target := roomByName(name)
	e.logger.LogAttrs(ctx, slog.LevelDebug, "requesting camera", slog.String("target", target.String()))
	return RequestCamera(s, e.src, target), nil, nil
}

func (e *Engine) discard(
	ctx context.Context,
	what string,
	discard func(*State) string,
) (string, *models.Answer, error) {
	answer, err := e.shell.PromptFreeChoice(ctx, "Are you sure you want to throw away "+what+"?", []string{"yes", "no"})
	if err != nil {
		return "", nil, errors.Wrap(err, "prompt discard")
	}
	if answer != "yes" {
		return "You decided to keep " + what + ".", nil, nil
	}
	return discard(e.state), nil, nil
}

func (e *Engine) accuse(ctx context.Context) (models.Answer, error) {
	var guess models.Answer

	suspect, err := e.shell.PromptFreeChoice(ctx, "Who killed Brian Thompson?", names(models.Suspects))
	if err != nil {
		return guess, errors.Wrap(err, "prompt suspect")
	}
	weapon, err := e.shell.PromptFreeChoice(ctx, "What was the murder weapon?", names(models.Weapons))
	if err != nil {
		return guess, errors.Wrap(err, "prompt weapon")
	}
	room, err := e.shell.PromptFreeChoice(ctx, "Where did it happen?", roomNames())
	if err != nil {
		return guess, errors.Wrap(err, "prompt room")
	}

	guess = models.Answer{
		Suspect: byName(models.Suspects, suspect),
		Weapon:  byName(models.Weapons, weapon),
		Room:    roomByName(room),
	}
	e.logger.LogAttrs(ctx, slog.LevelInfo, "accusation",
		slog.String("suspect", guess.Suspect.String()),
		slog.String("weapon", guess.Weapon.String()),
		slog.String("room", guess.Room.String()),
	)
	return guess, nil
}

// submissionKind is the lab analysis cmd starts, or an out of range Kind for any other command.
func submissionKind(cmd models.Command) evidence.Kind {
	switch cmd {
	case models.CommandSubmitDNA:
		return evidence.KindDNA
	case models.CommandSubmitFingerprints:
		return evidence.KindFingerprints
	case models.CommandRequestCamera:
		return evidence.KindCamera
	default:
		return -1
	}
}

func names[T interface{ String() string }](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}

func byName[T interface {
	comparable
	String() string
}](values []T, name string) T {
	for _, v := range values {
		if v.String() == name {
			return v
		}
	}
	var zero T
	return zero
}

func roomNames() []string {
	return names(models.InvestigableRooms)
}

func roomByName(name string) models.RoomID {
	return byName(models.InvestigableRooms, name)
}
