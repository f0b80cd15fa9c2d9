package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// WithShutdown returns a context that is canceled on SIGINT or SIGTERM.
func WithShutdown(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(parent)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigs)
		cancel()
	}
}

// RunApp - plays the configured games, reading human moves from in and writing the transcript to out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")
	printer := console.NewPrinter(out)

	if err := conf.Validate(); err != nil {
		if errors.Is(err, apperror.ErrInvalidMode) {
			log.Warn("refusing to start", "error", err)
			return printer.PrintInvalidMode()
		}

		return fmt.Errorf("invalid configuration: %w", err)
	}

	botService := service.NewBotService(logger, service.RandomChooser(service.NewRand(conf.Seed)))
	bot := service.NewBotPlayer(botService)

	xSource, oSource := bot, bot
	switch conf.Mode {
	case config.ModeX:
		xSource = service.NewHumanPlayer(in, out, printer)
	case config.ModeO:
		oSource = service.NewHumanPlayer(in, out, printer)
	}

	games := conf.Games
	if !conf.IsSimulation() {
		if games > 1 {
			log.Warn("ignoring game count outside simulation mode", "games", games)
		}

		games = 1

		if err := printer.PrintLegend(); err != nil {
			return err
		}
	}

	gameUseCase := usecase.NewGameUseCase(logger, xSource, oSource)

	log.Info("starting", "mode", conf.Mode, "games", games, "seed", conf.Seed)

	var tally console.Tally
	for range games {
		game, err := gameUseCase.Play(ctx)
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		if err != nil {
			return fmt.Errorf("game failed: %w", err)
		}

		if err = printer.PrintResult(game); err != nil {
			return err
		}

		tally.Add(game.Outcome())
	}

	if games > 1 {
		return printer.PrintTally(tally)
	}

	return nil
}
