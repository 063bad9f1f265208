package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/terminal"
)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		Long: `Play in the terminal. Logs go to the configured log file because the
game owns the screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger(true)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			screen, err := terminal.Open()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			defer screen.Fini()

			g, release, err := a.newGame(cmd.Context(), terminal.NewRenderer(screen), logger)
			if err != nil {
				return err
			}
			defer release()

			logger.Info("starting", zap.String("frontend", "terminal"), zap.Uint64("seed", a.cfg.Game.Seed))
			return terminal.Run(cmd.Context(), screen, g, a.cfg.Terminal.FPS, logger)
		},
	}
}
