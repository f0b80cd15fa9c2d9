package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const invalidModeMessage = "Invalid mode, valid modes are sim, X, O"

var legend = heredoc.Doc(`
	When prompted enter moves from 1 to 9, board positions are as follows
	['1', '2', '3']
	['4', '5', '6']
	['7', '8', '9']
`)

// Tally counts outcomes across several games.
type Tally struct {
	Games int
	XWins int
	OWins int
	Draws int
}

func (that *Tally) Add(outcome entity.Outcome) {
	that.Games++

	switch outcome {
	case entity.OutcomeXWins:
		that.XWins++
	case entity.OutcomeOWins:
		that.OWins++
	case entity.OutcomeDraw:
		that.Draws++
	}
}

// Printer writes the game transcript. Marks are coloured only when out is a colour terminal.
type Printer struct {
	out    io.Writer
	output *termenv.Output
}

func NewPrinter(out io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{
		out:    out,
		output: termenv.NewOutput(out, opts...),
	}
}

func (that *Printer) PrintBoard(title string, board entity.Board) error {
	var sb strings.Builder

	sb.WriteString(title)
	sb.WriteByte('\n')

	for row := 0; row < entity.BoardSize; row += 3 {
		cells := make([]string, 0, 3)
		for _, mark := range board[row : row+3] {
			cells = append(cells, "'"+that.renderMark(mark)+"'")
		}

		sb.WriteString("[" + strings.Join(cells, ", ") + "]\n")
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Printer) renderMark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.output.String(string(mark)).Foreground(that.output.Color("1")).Bold().String()
	case entity.PlayerO:
		return that.output.String(string(mark)).Foreground(that.output.Color("4")).Bold().String()
	default:
		return " "
	}
}

func (that *Printer) PrintLegend() error {
	if _, err := io.WriteString(that.out, legend); err != nil {
		return fmt.Errorf("failed to write legend: %w", err)
	}

	return nil
}

// PrintResult writes the final board followed by the winner or draw line.
func (that *Printer) PrintResult(game *entity.Game) error {
	if err := that.PrintBoard("Final Board:", game.Board); err != nil {
		return err
	}

	var line string
	switch game.Outcome() {
	case entity.OutcomeXWins, entity.OutcomeOWins:
		line = fmt.Sprintf("Winner: %s\n", game.Board.Winner())
	default:
		line = "Result: Draw\n"
	}

	if _, err := io.WriteString(that.out, line); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func (that *Printer) PrintTally(tally Tally) error {
	_, err := fmt.Fprintf(that.out, "Games: %d, X wins: %d, O wins: %d, Draws: %d\n",
		tally.Games, tally.XWins, tally.OWins, tally.Draws)
	if err != nil {
		return fmt.Errorf("failed to write tally: %w", err)
	}

	return nil
}

func (that *Printer) PrintInvalidMode() error {
	if _, err := fmt.Fprintln(that.out, invalidModeMessage); err != nil {
		return fmt.Errorf("failed to write mode error: %w", err)
	}

	return nil
}
