package service

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

const (
	ScoreXWins = 1
	ScoreDraw  = 0
	ScoreOWins = -1
)

// Evaluate returns the minimax value of board with toMove to play:
// +1 if X wins under optimal play, -1 if O wins, 0 for a draw.
// X maximizes and O minimizes. The whole tree is searched without pruning.
// Any other toMove is replaced by the side inferred from the mark counts.
func Evaluate(board entity.Board, toMove entity.Mark) int {
	if !toMove.IsPlayer() {
		toMove = board.SideToMove()
	}

	switch board.Winner() {
	case entity.PlayerX:
		return ScoreXWins
	case entity.PlayerO:
		return ScoreOWins
	}

	if board.IsFull() {
		return ScoreDraw
	}

	next := toMove.Opponent()
	best := 0
	for i, move := range board.LegalMoves() {
		child := board
		child[move] = toMove

		score := Evaluate(child, next)
		if i == 0 || better(toMove, score, best) {
			best = score
		}
	}

	return best
}

// better reports whether score improves on best from the point of view of mark.
func better(mark entity.Mark, score, best int) bool {
	if mark == entity.PlayerX {
		return score > best
	}

	return score < best
}
