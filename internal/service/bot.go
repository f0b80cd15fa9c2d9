package service

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Chooser picks one of the equally good moves. candidates is never empty and is sorted ascending.
type Chooser func(candidates []int) int

// RandomChooser picks uniformly from the candidates using rng.
func RandomChooser(rng *rand.Rand) Chooser {
	return func(candidates []int) int {
		return candidates[rng.IntN(len(candidates))]
	}
}

// FirstChooser always picks the lowest cell.
func FirstChooser(candidates []int) int {
	return candidates[0]
}

// NewRand returns a PCG source seeded with seed, or a randomly seeded one when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // it's ok
}

type BotService interface {
	SelectMove(board entity.Board, toMove entity.Mark) (int, error)
}

type botService struct {
	logger *slog.Logger
	choose Chooser
}

func NewBotService(logger *slog.Logger, choose Chooser) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		choose: choose,
	}
}

// SelectMove scores every legal move and picks one of those sharing the best score.
func (that *botService) SelectMove(board entity.Board, toMove entity.Mark) (int, error) {
	if !toMove.IsPlayer() {
		return 0, fmt.Errorf("%w: no side to move", apperror.ErrNoAvailableMoves)
	}

	if board.IsTerminal() {
		return 0, fmt.Errorf("%w: board is terminal", apperror.ErrNoAvailableMoves)
	}

	moves := board.LegalMoves()
	scores := make([]int, len(moves))
	next := toMove.Opponent()

	best := 0
	for i, move := range moves {
		child := board
		child[move] = toMove

		scores[i] = Evaluate(child, next)
		if i == 0 || better(toMove, scores[i], best) {
			best = scores[i]
		}
	}

	candidates := make([]int, 0, len(moves))
	for i, move := range moves {
		if scores[i] == best {
			candidates = append(candidates, move)
		}
	}

	chosen := that.choose(candidates)

	that.logger.Debug("selected move",
		"mark", toMove,
		"cell", chosen,
		"score", best,
		"candidates", candidates,
	)

	return chosen, nil
}
