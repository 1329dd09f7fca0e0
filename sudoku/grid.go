package sudoku

import (
	"fmt"
	"strings"
	"unicode"
)

// CellCount is the number of cells on a 9x9 board.
const CellCount = BoardSize * BoardSize

// ParseBoard reads a board from its 81-character text form. '1'-'9' are
// digits, '.' and '0' are empty cells; whitespace is ignored so boards
// written one row per line parse too. Empty cells come out as zeros, which
// the validator then reports as missing digits.
func ParseBoard(s string) ([][]int, error) {
	cells := make([]int, 0, CellCount)
	for _, ch := range s {
		switch {
		case ch == '.' || ch == '0':
			cells = append(cells, 0)
		case ch >= '1' && ch <= '9':
			cells = append(cells, int(ch-'0'))
		case unicode.IsSpace(ch):
			// padding between cells or rows
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, len(cells))
		}
	}
	if len(cells) != CellCount {
		return nil, fmt.Errorf("board must have exactly %d cells, got %d", CellCount, len(cells))
	}

	board := make([][]int, BoardSize)
	for r := range board {
		// Cap each row at its own nine cells so appending to one row
		// cannot overwrite the next.
		board[r] = cells[r*BoardSize : (r+1)*BoardSize : (r+1)*BoardSize]
	}
	return board, nil
}

// FormatBoard renders a board with 3x3 box borders, '.' for empty cells.
// Ragged rows render as-is.
func FormatBoard(board [][]int) string {
	var sb strings.Builder
	border := "+-------+-------+-------+\n"

	sb.WriteString(border)
	for r, row := range board {
		sb.WriteString("|")
		for c, cell := range row {
			if cell == 0 {
				sb.WriteString(" .")
			} else {
				fmt.Fprintf(&sb, " %d", cell)
			}
			if (c+1)%blockSize == 0 {
				sb.WriteString(" |")
			}
		}
		sb.WriteString("\n")
		if (r+1)%blockSize == 0 {
			sb.WriteString(border)
		}
	}
	return sb.String()
}
