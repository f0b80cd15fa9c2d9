package cli

import (
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a perfect opponent",
		Long: heredoc.Doc(`
			tictactoe plays a game of tic-tac-toe where every agent move is chosen
			by an exhaustive minimax search. Ties between equally good moves are
			broken at random, so agents are never beaten but vary their play.

			Modes:
			  sim  two agents play each other
			  X    you play X against the agent
			  O    you play O against the agent
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			applyFlags(cmd, conf)

			logger := newLogger(conf.LogLevel, cmd.ErrOrStderr())

			ctx, cancel := app.WithShutdown(cmd.Context(), logger)
			defer cancel()

			return app.RunApp(ctx, logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := root.Flags()
	flags.StringP("mode", "m", config.ModeSim, "Mode for simulation, sim for two agents, X to play as X, O to play as O")
	flags.Uint64("seed", 0, "Seed for tie-breaking between equal moves (0 picks a random seed)")
	flags.IntP("games", "n", 1, "Number of games to play in sim mode")
	flags.StringP("config", "c", "", "Path to a config file")
	flags.BoolP("trace", "t", false, "Show Trace Information")

	return root
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(cmd *cobra.Command, conf *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("mode") {
		conf.Mode, _ = flags.GetString("mode")
	}

	if flags.Changed("seed") {
		conf.Seed, _ = flags.GetUint64("seed")
	}

	if flags.Changed("games") {
		conf.Games, _ = flags.GetInt("games")
	}

	if flags.Changed("trace") {
		if trace, _ := flags.GetBool("trace"); trace {
			conf.LogLevel = "debug"
		}
	}
}

func newLogger(logLevel string, w io.Writer) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
