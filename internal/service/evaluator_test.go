package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is a draw under perfect play", func(t *testing.T) {
		assert.Equal(t, ScoreDraw, Evaluate(entity.Board{}, x))
	})

	t.Run("Completed X line scores +1 regardless of empty cells", func(t *testing.T) {
		// Given: X already has the left column while most cells are still empty
		board := entity.Board{
			x, o, e,
			x, o, e,
			x, e, e,
		}

		// Then: the score is +1 whoever is to move
		assert.Equal(t, ScoreXWins, Evaluate(board, o))
		assert.Equal(t, ScoreXWins, Evaluate(board, x))
	})

	t.Run("Completed O line scores -1", func(t *testing.T) {
		board := entity.Board{
			o, o, o,
			x, x, e,
			x, e, e,
		}

		assert.Equal(t, ScoreOWins, Evaluate(board, x))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		assert.Equal(t, ScoreDraw, Evaluate(board, o))
	})

	t.Run("Side to move wins with an immediate line", func(t *testing.T) {
		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}

		assert.Equal(t, ScoreOWins, Evaluate(board, o))
		assert.Equal(t, ScoreXWins, Evaluate(board, x))
	})

	t.Run("Double threat cannot be blocked", func(t *testing.T) {
		// Given: X holds both ends of two diagonals through the centre
		board := entity.Board{
			x, o, x,
			o, x, o,
			e, e, e,
		}

		// Then: every O reply loses
		for _, move := range board.LegalMoves() {
			child := board
			child[move] = o
			assert.Equal(t, ScoreXWins, Evaluate(child, x), "O plays %d", move)
		}
		assert.Equal(t, ScoreXWins, Evaluate(board, o))
	})

	t.Run("Missing side to move is inferred from the board", func(t *testing.T) {
		// Given: X has one more mark than O, so O is to move and can win at once
		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}
		empty := entity.Board{}

		// When: evaluating without naming the side to move
		// Then: the search finishes with the value for the inferred side
		assert.Equal(t, Evaluate(board, o), Evaluate(board, e))
		assert.Equal(t, ScoreDraw, Evaluate(empty, e))
	})

	t.Run("Search does not mutate the caller's board", func(t *testing.T) {
		board := entity.Board{x, e, e, e, o, e, e, e, e}
		before := board

		Evaluate(board, x)

		assert.Equal(t, before, board)
	})
}
