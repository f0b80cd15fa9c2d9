package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	msgCellOccupied = "Invalid move, board position already filled, try again:"
	msgBadInput     = "Invalid input, enter a number from 1 to 9:"
)

// MoveSource supplies the cell for the side to move. The returned cell is always empty on board.
type MoveSource interface {
	NextMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error)
}

type boardPrinter interface {
	PrintBoard(title string, board entity.Board) error
}

type inputLine struct {
	text string
	err  error
}

type humanPlayer struct {
	input   *bufio.Scanner
	output  io.Writer
	printer boardPrinter

	// lines is fed by a single reader goroutine started on the first read.
	lines     chan inputLine
	startOnce sync.Once
}

// NewHumanPlayer reads 1-indexed cells from in, one per line, and prompts on out.
// A blocked read is abandoned as soon as the context passed to NextMove is canceled.
func NewHumanPlayer(in io.Reader, out io.Writer, printer boardPrinter) MoveSource {
	return &humanPlayer{
		input:   bufio.NewScanner(in),
		output:  out,
		printer: printer,
		lines:   make(chan inputLine),
	}
}

func (that *humanPlayer) NextMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error) {
	if err := that.printer.PrintBoard("Current Board:", board); err != nil {
		return 0, fmt.Errorf("failed to print board: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if _, err := fmt.Fprintf(that.output, "Enter move for %s: ", mark); err != nil {
			return 0, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		number, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || number < 1 || number > entity.BoardSize {
			fmt.Fprintln(that.output, msgBadInput)
			continue
		}

		cell := number - 1
		if board[cell] != entity.EmptyCell {
			fmt.Fprintln(that.output, msgCellOccupied)
			continue
		}

		return cell, nil
	}
}

func (that *humanPlayer) readLine(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		return line.text, line.err
	}
}

func (that *humanPlayer) readLines() {
	defer close(that.lines)

	for that.input.Scan() {
		that.lines <- inputLine{text: that.input.Text()}
	}

	if err := that.input.Err(); err != nil {
		that.lines <- inputLine{err: fmt.Errorf("failed to read move: %w", err)}
	}
}

type botPlayer struct {
	botService BotService
}

func NewBotPlayer(botService BotService) MoveSource {
	return &botPlayer{
		botService: botService,
	}
}

func (that *botPlayer) NextMove(_ context.Context, board entity.Board, mark entity.Mark) (int, error) {
	cell, err := that.botService.SelectMove(board, mark)
	if err != nil {
		return 0, fmt.Errorf("bot failed to select move: %w", err)
	}

	return cell, nil
}
