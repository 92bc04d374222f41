package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const banner = `-----------------------
  Welcome to Clue 2.0
-----------------------`

const aboutText = `Clue 2.0 recreates the classic mystery game Clue with modern forensic tools. ` +
	`Search the mansion for a DNA collector, a fingerprint collector and a UV scanner, ` +
	`bring your samples to Detective Joseph on the staircase and name the killer, the weapon and the room ` +
	`before the trail goes cold.`

var intro = []string{
	"Welcome, detective. I've been awaiting your arrival. Thank you for coming on such short notice. " +
		"I'm Detective Joseph Kenny with the local police department. " +
		"We recently received a report of the murder of famous millionaire Brian Thompson.",
	"Thompson was killed in his mansion last Thursday and the killer has been on the run ever since. " +
		"We need your help in solving this mystery.",
}

// MenuChoice is picked from the main menu.
type MenuChoice int

const (
	MenuAbout MenuChoice = iota
	MenuBegin
)

var menuOptions = []struct {
	choice      MenuChoice
	name        string
	description string
}{
	{MenuAbout, "about", "Learn more about Clue 2.0"},
	{MenuBegin, "begin", "Start the game"},
}

// Welcome prints the banner shown once per session.
func (s *Shell) Welcome() {
	s.println(s.palette.heading.Sprint(banner))
}

// Menu shows the main menu until the player picks an option.
func (s *Shell) Menu(ctx context.Context) (MenuChoice, error) {
	const prompt = "Please select from the options below:"
	list := func() {
		s.rollingPrintln(prompt)
		for _, o := range menuOptions {
			s.println(fmt.Sprintf("%s - %s", s.palette.command.Sprintf(" %s ", o.name), o.description))
		}
	}
	list()
	for {
		input, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}
		for _, o := range menuOptions {
			if input == o.name {
				return o.choice, nil
			}
		}
		s.rollingPrintln(unknownInput)
		list()
	}
}

// ShowAbout tells the player what the game is.
func (s *Shell) ShowAbout() {
	s.rollingPrintln(aboutText)
}

// About shows the about text from the main menu and waits for Enter.
func (s *Shell) About(ctx context.Context) error {
	s.ShowAbout()
	s.println("")
	s.rollingPrintln("To return to the main menu, press enter.")
	for {
		input, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}
	}
}

// Intro is Detective Joseph's briefing. It ends with the player agreeing to take the case.
func (s *Shell) Intro(ctx context.Context) (bool, error) {
	for _, paragraph := range intro {
		s.rollingPrintln(paragraph)
		s.println("")
	}
	return s.Confirm(ctx, "Are you willing to help?")
}

// Confirm asks a yes/no question.
func (s *Shell) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := s.PromptFreeChoice(ctx, question, []string{"yes", "no"})
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// AskName asks for the name the detective goes by.
func (s *Shell) AskName(ctx context.Context) (string, error) {
	s.rollingPrintln("Before we begin, what should I call you?")
	for {
		if err := ctx.Err(); err != nil {
			return "", wrapReadErr(err)
		}
		input, err := s.in.Prompt("> ")
		if err != nil {
			return "", wrapReadErr(err)
		}
		if name := strings.TrimSpace(input); name != "" {
			s.rollingPrintln(fmt.Sprintf("Good to have you, Detective %s. Come find me on the staircase "+
				"whenever you have samples to analyze.", name))
			return name, nil
		}
	}
}

// ShowOutcome prints the closing narration and the statistics of a finished game.
func (s *Shell) ShowOutcome(outcome models.Outcome) {
	s.println("")
	s.rollingPrintln(outcome.Message)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Case closed: %s", resultLabel(outcome.Result))
	t.AppendHeader(table.Row{"", "Accused", "Answer", ""})
	if outcome.Result != models.ResultTimedOut {
		t.AppendRows([]table.Row{
			{"Suspect", outcome.Guess.Suspect, outcome.Answer.Suspect, mark(outcome.SuspectCorrect)},
			{"Weapon", outcome.Guess.Weapon, outcome.Answer.Weapon, mark(outcome.WeaponCorrect)},
			{"Room", outcome.Guess.Room, outcome.Answer.Room, mark(outcome.RoomCorrect)},
		})
	} else {
		t.AppendRows([]table.Row{
			{"Suspect", "-", outcome.Answer.Suspect, mark(false)},
			{"Weapon", "-", outcome.Answer.Weapon, mark(false)},
			{"Room", "-", outcome.Answer.Room, mark(false)},
		})
	}
	s.println(t.Render())

	st := outcome.Stats
	stats := table.NewWriter()
	stats.SetStyle(table.StyleLight)
	stats.SetTitle("Statistics")
	stats.AppendRows([]table.Row{
		{"Turns", st.Turns},
		{"Actionable turns", st.ActionableTurns},
		{"Searches", st.Searches},
		{"Samples collected", st.SamplesCollected},
		{"Samples analyzed", st.SamplesAnalyzed},
		{"UV scans", st.UVScans},
		{"Camera requests", st.CameraRequests},
		{"Donuts spent", st.DonutsSpent},
	})
	stats.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	s.println(stats.Render())
}

// ShowHistory prints the cases closed during the session and how they ended.
func (s *Shell) ShowHistory(cases []models.CaseFile, summary map[models.Result]int) {
	if len(cases) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Case archive")
	t.AppendHeader(table.Row{"#", "Detective", "Result", "Answer", "Accused", "Turns"})
	for i, cf := range cases {
		accused := cf.Accused
		if accused == "" {
			accused = "-"
		}
		t.AppendRow(table.Row{
			i + 1, cf.Detective, resultLabel(cf.Result),
			fmt.Sprintf("%s, %s, %s", cf.Suspect, cf.Weapon, cf.Room), accused, cf.ActionableTurns,
		})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d solved", summary[models.ResultSolved]), "", "",
		fmt.Sprintf("%d cases", len(cases))})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	s.println("")
	s.println(t.Render())
}

func resultLabel(r models.Result) string {
	switch r {
	case models.ResultSolved:
		return "Solved"
	case models.ResultPartial:
		return "Partially solved"
	case models.ResultFailed:
		return "Failed"
	case models.ResultTimedOut:
		return "Timed out"
	default:
		return string(r)
	}
}

func mark(ok bool) string {
	if ok {
		return "✔"
	}
	return "✖"
}
