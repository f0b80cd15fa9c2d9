package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GameUseCase interface {
	Play(ctx context.Context) (*entity.Game, error)
}

type moveSource interface {
	NextMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error)
}

type gameUseCase struct {
	logger *slog.Logger

	sources map[entity.Mark]moveSource
}

// NewGameUseCase binds one move source to each side. Both may be the same value.
func NewGameUseCase(logger *slog.Logger, xSource, oSource moveSource) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "game"),
		sources: map[entity.Mark]moveSource{
			entity.PlayerX: xSource,
			entity.PlayerO: oSource,
		},
	}
}

// Play runs a fresh game to completion and returns the finished game.
func (that *gameUseCase) Play(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame()
	that.logger.Info("game started")

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		mark := game.Turn

		cell, err := that.sources[mark].NextMove(ctx, game.Board, mark)
		if err != nil {
			return game, fmt.Errorf("failed to get move for %s: %w", mark, err)
		}

		if err = game.MakeTurn(mark, cell); err != nil {
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		that.logger.Debug("turn made", "mark", mark, "cell", cell)
	}

	that.logger.Info("game finished", "outcome", game.Outcome().String(), "winner", game.Winner)

	return game, nil
}
