package terminal_test

import (
	"context"
	"strings"
	"testing"

	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/terminal"
	"github.com/stretchr/testify/require"
)

func TestMenu(t *testing.T) {
	ctx := context.Background()
	shell, out, _ := newShell("help", "about", "begin")

	choice, err := shell.Menu(ctx)
	require.NoError(t, err)
	require.Equal(t, terminal.MenuAbout, choice)
	require.Contains(t, out.String(), "You can't do that right now.")

	choice, err = shell.Menu(ctx)
	require.NoError(t, err)
	require.Equal(t, terminal.MenuBegin, choice)
}

func TestAboutWaitsForEnter(t *testing.T) {
	shell, _, in := newShell("menu", "", "begin")
	require.NoError(t, shell.About(context.Background()))
	require.Equal(t, []string{"begin"}, in.lines)
}

func TestIntro(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "accepts", answer: "yes", want: true},
		{name: "declines", answer: "n", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, out, _ := newShell(tt.answer)
			got, err := shell.Intro(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Contains(t, out.String(), "Detective Joseph Kenny")
			require.Contains(t, out.String(), "Are you willing to help?")
		})
	}
}

func TestAskNameKeepsCase(t *testing.T) {
	shell, out, _ := newShell("   ", " Sam Spade ")
	name, err := shell.AskName(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Sam Spade", name)
	require.Contains(t, out.String(), "Detective Sam Spade")
}

func TestShowOutcome(t *testing.T) {
	answer := models.Answer{Suspect: models.SuspectPlum, Weapon: models.WeaponRope, Room: models.RoomStudy}
	tests := []struct {
		name     string
		outcome  models.Outcome
		contains []string
	}{
		{
			name: "accusation",
			outcome: models.Outcome{
				Result:         models.ResultPartial,
				Guess:          models.Answer{Suspect: models.SuspectPlum, Weapon: models.WeaponDagger, Room: models.RoomStudy},
				Answer:         answer,
				SuspectCorrect: true,
				RoomCorrect:    true,
				Message:        "You were nearly there!",
				Stats:          models.Stats{Turns: 50, DonutsSpent: 7},
			},
			contains: []string{"You were nearly there!", "Partially solved", "Dagger", "✖", "Donuts spent"},
		},
		{
			name: "timed out",
			outcome: models.Outcome{
				Result:  models.ResultTimedOut,
				Answer:  answer,
				Message: "You ran out of time.",
			},
			contains: []string{"You ran out of time.", "Timed out", "Professor Plum"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, out, _ := newShell()
			shell.ShowOutcome(tt.outcome)
			for _, want := range tt.contains {
				require.Contains(t, out.String(), want)
			}
		})
	}
}

func TestShowHistory(t *testing.T) {
	shell, out, _ := newShell()
	shell.ShowHistory(nil, nil)
	require.Empty(t, out.String())

	shell.ShowHistory([]models.CaseFile{
		{Detective: "Sam", Result: models.ResultSolved, Suspect: "Professor Plum", Weapon: "Rope", Room: "Study",
			Accused: "Professor Plum, Rope, Study"},
		{Detective: "Sam", Result: models.ResultTimedOut, Suspect: "Mrs. White", Weapon: "Wrench", Room: "Hall"},
	}, map[models.Result]int{models.ResultSolved: 1, models.ResultTimedOut: 1})
	require.Contains(t, out.String(), "Mrs. White, Wrench, Hall")
	require.Contains(t, strings.ToLower(out.String()), "1 solved", "footers are upper-cased")
	require.Equal(t, 2, strings.Count(out.String(), "Sam"))
}
