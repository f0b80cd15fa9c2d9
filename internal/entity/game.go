package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// PlayerTie is stored in Game.Winner when the board fills up without a line.
	PlayerTie = "-"
)

// Game owns the single live board of a match.
type Game struct {
	Board  Board  `json:"board"`
	Winner string `json:"winner"`
	Status string `json:"status"`
	Turn   Mark   `json:"player_turn"`
}

func NewGame() *Game {
	return &Game{
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) UpdateGameState() {
	switch that.Board.Outcome() {
	// one player wins
	case OutcomeXWins, OutcomeOWins:
		that.Winner = string(that.Board.Winner())
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case OutcomeDraw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn places playerMark on cell. A rejected turn leaves the game unchanged.
func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.Play(playerMark, cell)
	if err != nil {
		return fmt.Errorf("failed to play cell: %w", err)
	}

	that.Board = board
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
