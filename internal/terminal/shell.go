package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/game"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/peterh/liner"
)

// ErrAborted is returned when the player closes the input with Ctrl-C or Ctrl-D.
var ErrAborted = errors.NewSentinel("aborted by player")

const (
	unknownInput = "You can't do that right now."
	notAnOption  = "That's not one of the options."
	ackPrompt    = "Type ok to continue."
	resultWidth  = 60
)

// LineReader reads one line of player input. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// NewLineReader returns a liner backed reader on which Ctrl-C aborts the prompt. Close it to restore the terminal.
func NewLineReader() *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return line
}

// Options tune the output of a Shell.
type Options struct {
	// RollingDelay is the pause between runes of narration. Zero prints narration at once.
	RollingDelay time.Duration
	NoColor      bool
}

// Shell is the terminal host of a game. It implements [game.Shell].
type Shell struct {
	logger  *slog.Logger
	out     io.Writer
	in      LineReader
	board   *board.Board
	delay   time.Duration
	palette palette
}

var _ game.Shell = (*Shell)(nil)

func New(logger *slog.Logger, out io.Writer, in LineReader, b *board.Board, opts Options) *Shell {
	return &Shell{
		logger:  logger.With(slog.String("source", "Shell")),
		out:     out,
		in:      in,
		board:   b,
		delay:   opts.RollingDelay,
		palette: newPalette(opts.NoColor),
	}
}

// RenderBoard draws the floor plan with the detective on it, followed by the turn and location.
func (s *Shell) RenderBoard(snapshot game.Snapshot) {
	var sb strings.Builder
	sb.WriteString("\n")
	for y, row := range s.board.Rows() {
		for x := range len(row) {
			if snapshot.Position == (board.Position{X: x, Y: y}) {
				sb.WriteString(s.palette.player.Sprint("@"))
				continue
			}
			sb.WriteString(s.palette.glyph(row[x]).Sprint(string(row[x])))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nTurn %d, %d turns remaining. You are in the %s. Donuts: %d\n",
		snapshot.Turn, snapshot.TurnsRemaining, snapshot.Room, snapshot.Inventory.Donuts)
	s.print(sb.String())
}

// Narrate rolls text out to the player.
func (s *Shell) Narrate(text string) {
	s.rollingPrintln(text)
}

// PromptCommand lists legal and reads input until it names one of them by name or alias.
func (s *Shell) PromptCommand(ctx context.Context, prompt string, legal []models.Command) (models.Command, error) {
	s.rollingPrintln(prompt)
	s.listCommands(legal)
	for {
		input, err := s.readLine(ctx)
		if err != nil {
			return models.CommandUnspecified, err
		}
		for _, c := range legal {
			if c.Matches(input) {
				return c, nil
			}
		}
		s.logger.LogAttrs(ctx, slog.LevelDebug, "unrecognized command", slog.String("input", input))
		s.rollingPrintln(unknownInput)
		s.rollingPrintln(prompt)
		s.listCommands(legal)
	}
}

// PromptFreeChoice reads input until it matches one of allowed, ignoring case. "y" and "n" answer yes/no questions.
func (s *Shell) PromptFreeChoice(ctx context.Context, prompt string, allowed []string) (string, error) {
	s.rollingPrintln(prompt)
	s.println(s.palette.hint.Sprint(strings.Join(allowed, ", ")))
	for {
		input, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		if choice, ok := matchChoice(input, allowed); ok {
			return choice, nil
		}
		s.rollingPrintln(notAnOption)
		s.println(s.palette.hint.Sprint(strings.Join(allowed, ", ")))
	}
}

func matchChoice(input string, allowed []string) (string, bool) {
	for _, a := range allowed {
		if strings.EqualFold(input, a) {
			return a, true
		}
		switch {
		case strings.EqualFold(a, "yes") && input == "y":
			return a, true
		case strings.EqualFold(a, "no") && input == "n":
			return a, true
		}
	}
	return "", false
}

// ShowResultBlock frames a lab result.
func (s *Shell) ShowResultBlock(text string) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendRow(table.Row{text})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, WidthMax: resultWidth}})
	s.println("")
	s.println(s.palette.result.Sprint(t.Render()))
}

// AwaitAcknowledgement blocks until the player types ok.
func (s *Shell) AwaitAcknowledgement(ctx context.Context) error {
	s.println(s.palette.hint.Sprint(ackPrompt))
	for {
		input, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if strings.EqualFold(input, "ok") {
			return nil
		}
		s.println(s.palette.hint.Sprint(ackPrompt))
	}
}

func (s *Shell) listCommands(legal []models.Command) {
	var sb strings.Builder
	for _, c := range legal {
		fmt.Fprintf(&sb, "%s - %s\n", s.palette.command.Sprintf(" %s ", c.Name()), c.Description())
	}
	s.print(sb.String())
}

// readLine returns the next trimmed, lower-case line of input.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", wrapReadErr(err)
	}
	input, err := s.in.Prompt("> ")
	if err != nil {
		return "", wrapReadErr(err)
	}
	input = strings.ToLower(strings.TrimSpace(input))
	if input != "" {
		s.in.AppendHistory(input)
	}
	return input, nil
}

func wrapReadErr(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return errors.Wrap(ErrAborted, "read line")
	}
	return errors.Wrap(err, "read line")
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Shell) println(text string) {
	s.print(text + "\n")
}

// rollingPrintln prints text one rune at a time.
func (s *Shell) rollingPrintln(text string) {
	if s.delay <= 0 {
		s.println(text)
		return
	}
	for _, r := range text {
		s.print(string(r))
		time.Sleep(s.delay)
	}
	s.print("\n")
}
