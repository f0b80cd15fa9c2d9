package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the value of a cell and also identifies the side to move.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// Outcome is derived from board contents only.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

const BoardSize = 9

var (
	ErrInvalidCell = errors.New("invalid cell index")

	// WinCombos lists rows, then columns, then diagonals.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Opponent returns the other side. EmptyCell has no opponent and maps to itself.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins:
		return "X wins"
	case OutcomeOWins:
		return "O wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// Board is a fixed-size value; assigning it copies every cell.
type Board [BoardSize]Mark

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Winner returns the mark on the first complete line, or EmptyCell if there is none.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// LegalMoves returns the empty cells in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that Board) Outcome() Outcome {
	switch that.Winner() {
	case PlayerX:
		return OutcomeXWins
	case PlayerO:
		return OutcomeOWins
	}

	if that.IsFull() {
		return OutcomeDraw
	}

	return OutcomeInProgress
}

// SideToMove infers whose turn it is from the mark counts: X moves whenever both sides have played equally.
func (that Board) SideToMove() Mark {
	xCount, oCount := 0, 0
	for _, cell := range that {
		switch cell {
		case PlayerX:
			xCount++
		case PlayerO:
			oCount++
		}
	}

	if xCount > oCount {
		return PlayerO
	}

	return PlayerX
}

func (that Board) IsTerminal() bool {
	return that.Outcome() != OutcomeInProgress
}

// Play returns a copy of the board with mark placed on cell. The receiver is left untouched.
func (that Board) Play(mark Mark, cell int) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return that, apperror.ErrCellOccupied
	}

	that[cell] = mark

	return that, nil
}
