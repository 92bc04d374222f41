package main

import (
	"os"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/logging"
	"github.com/27achang/2024WinterFinal/internal/terminal"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:     "about",
	GroupID: "game",
	Short:   "Learn more about Clue 2.0",
	Args:    cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		logger := logging.NewLogger(os.Stderr, cfg.Level())
		shell := terminal.New(logger, os.Stdout, nil, board.New(), terminal.Options{
			RollingDelay: cfg.RollingDelay,
			NoColor:      cfg.NoColor,
		})
		shell.ShowAbout()
	},
}
