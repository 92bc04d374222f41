package main

import (
	"fmt"
	"os"

	"github.com/27achang/2024WinterFinal/internal/config"
	"github.com/spf13/cobra"
)

var cfg config.Config

func init() {
	rootCmd.AddGroup(gameGroup)
	rootCmd.AddCommand(playCmd, aboutCmd)
}

var rootCmd = &cobra.Command{
	Use:          "clue",
	Short:        "Solve the murder of Brian Thompson",
	Long:         `Clue 2.0 is a text adventure in the spirit of the board game Clue, played in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(".env")
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
