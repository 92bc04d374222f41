package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/config"
	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/game"
	"github.com/27achang/2024WinterFinal/internal/logging"
	"github.com/27achang/2024WinterFinal/internal/random"
	"github.com/27achang/2024WinterFinal/internal/repositories"
	"github.com/27achang/2024WinterFinal/internal/sqlite"
	"github.com/27achang/2024WinterFinal/internal/terminal"
	"github.com/spf13/cobra"
)

var gameGroup = &cobra.Group{
	ID:    "game",
	Title: "Game",
}

func init() {
	playCmd.Flags().Int64("seed", 0, "seed that reproduces the cases of the session (0 picks a random seed)")
	playCmd.Flags().Bool("no-rolling", false, "print narration at once")
}

var playCmd = &cobra.Command{
	Use:     "play",
	GroupID: "game",
	Short:   "Start a session",
	Long:    `Shows the main menu and plays cases until you call it a day. Closed cases are listed at the end.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if seed, err := cmd.Flags().GetInt64("seed"); err == nil && cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if noRolling, err := cmd.Flags().GetBool("no-rolling"); err == nil && noRolling {
			cfg.RollingDelay = 0
		}

		logger := logging.NewLogger(os.Stderr, cfg.Level())
		line := terminal.NewLineReader()
		defer func() {
			if err := line.Close(); err != nil {
				logger.LogAttrs(cmd.Context(), slog.LevelWarn, "failed to restore terminal", errors.SlogError(err))
			}
		}()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return play(ctx, cfg, logger, line, os.Stdout)
	},
}

// play runs one session: the main menu, as many cases as the player wants and the case archive.
func play(ctx context.Context, cfg config.Config, logger *slog.Logger, in terminal.LineReader, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return errors.Wrap(err, "new seed")
		}
	}
	ctx = logging.WithAttrs(ctx, slog.Int64("seed", seed))
	src := random.New(seed)

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		return errors.Wrap(err, "open case archive")
	}
	defer func() {
		if closeErr := db.Close(ctx); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "failed to close case archive", errors.SlogError(closeErr))
		}
	}()
	cases := repositories.NewCaseFileRepository(db, logger)

	b := board.New()
	shell := terminal.New(logger, out, in, b, terminal.Options{
		RollingDelay: cfg.RollingDelay,
		NoColor:      cfg.NoColor,
	})

	detective, err := welcome(ctx, shell)
	if errors.Is(err, terminal.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}

	for {
		state := game.NewCase(src, game.Options{Detective: detective, StartingDonuts: cfg.StartingDonuts})
		outcome, runErr := game.NewEngine(logger, b, shell, src, state).Run(ctx)
		if errors.Is(runErr, terminal.ErrAborted) {
			break
		}
		if runErr != nil {
			return errors.Wrap(runErr, "run case")
		}
		shell.ShowOutcome(outcome)
		cf := repositories.NewCaseFile(state.ID, detective, outcome, state.Log, time.Now())
		if err = cases.Save(ctx, cf); err != nil {
			return errors.Wrap(err, "archive case")
		}

		again, confirmErr := shell.Confirm(ctx, "Would you like to take on another case?")
		if confirmErr != nil && !errors.Is(confirmErr, terminal.ErrAborted) {
			return confirmErr
		}
		if !again {
			break
		}
	}

	return showHistory(ctx, shell, cases)
}

// welcome loops the main menu until the player takes the case and returns the detective's name.
func welcome(ctx context.Context, shell *terminal.Shell) (string, error) {
	shell.Welcome()
	for {
		choice, err := shell.Menu(ctx)
		if err != nil {
			return "", err
		}
		if choice == terminal.MenuAbout {
			if err = shell.About(ctx); err != nil {
				return "", err
			}
			continue
		}
		willing, err := shell.Intro(ctx)
		if err != nil {
			return "", err
		}
		if willing {
			return shell.AskName(ctx)
		}
		shell.Narrate("I understand. Come back if you change your mind.")
	}
}

func showHistory(ctx context.Context, shell *terminal.Shell, cases *repositories.CaseFileRepository) error {
	list, err := cases.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list cases")
	}
	summary, err := cases.Summary(ctx)
	if err != nil {
		return errors.Wrap(err, "summarize cases")
	}
	shell.ShowHistory(list, summary)
	return nil
}
