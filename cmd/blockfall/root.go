package main

import (
	"github.com/spf13/cobra"
)

const title = "Tetris"

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "blockfall",
		Short: "Falling block puzzle game",
		Long: `Blockfall is a falling block puzzle game.

Without a subcommand the game opens in a desktop window. Use "blockfall term"
to play in the terminal instead.`,
		Example: `  blockfall
  blockfall --seed 42 --debug
  blockfall term --spectate :8080`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDesktop(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a TOML config file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Uint64("seed", 0, "piece generator seed, 0 seeds from the clock")
	flags.Bool("debug", false, "show the imgui debug overlay")
	flags.Bool("audio", false, "play sound effects")
	flags.String("spectate", "", "serve the spectator API on this address")

	cmd.AddCommand(
		newTermCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// skipLoad replaces the root's config loading for commands that never start a
// game.
func skipLoad(*cobra.Command, []string) error { return nil }
