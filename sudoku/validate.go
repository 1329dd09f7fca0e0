// Package sudoku validates 9x9 Sudoku boards and single 9-cell groups.
package sudoku

import (
	"fmt"
	"sort"
)

// Board geometry. A group is a row, a column or a 3x3 block; a valid group
// holds the digits 1..GroupSize exactly once.
const (
	BoardSize = 9
	GroupSize = 9
	blockSize = 3
)

// ValidateGroup checks that numbers holds exactly the digits 1-9. label
// identifies the group in the returned error and may be empty.
//
// Only absence is reported: duplicate or out-of-range values surface
// indirectly through the digits they displace.
func ValidateGroup(numbers []int, label string) error {
	if len(numbers) != GroupSize {
		return &ValidationError{Kind: ErrSizeMismatch, Label: label, Actual: len(numbers)}
	}

	seen := make(map[int]bool, GroupSize)
	for _, n := range numbers {
		seen[n] = true
	}

	var missing []int
	for d := 1; d <= GroupSize; d++ {
		if !seen[d] {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Kind: ErrMissingDigits, Label: label, Missing: missing}
	}
	return nil
}

// ValidateFlatGroup flattens grid row-major and validates the result as a
// single unlabeled group. Covers the 3x3 (9-cell) case.
func ValidateFlatGroup(grid [][]int) error {
	var numbers []int
	for _, row := range grid {
		numbers = append(numbers, row...)
	}
	return ValidateGroup(numbers, "")
}

// ValidateBoard checks a full 9x9 board: every row, column and 3x3 block
// must be a valid group. Groups are validated in sorted lexicographic order
// of their keys (column0..column8, line0..line8, sudoku00..sudoku22) and
// the first failure wins, so error reporting is deterministic for any given
// board. A board with the wrong row count fails up front with the label
// "external".
func ValidateBoard(board [][]int) error {
	if len(board) != BoardSize {
		return &ValidationError{Kind: ErrSizeMismatch, Label: "external", Actual: len(board)}
	}

	// Seed the 27 canonical groups so a board starved of cells still fails
	// its size checks.
	groups := make(map[string][]int, 3*BoardSize)
	for i := 0; i < BoardSize; i++ {
		groups[lineKey(i)] = nil
		groups[columnKey(i)] = nil
	}
	for r := 0; r < BoardSize; r += blockSize {
		for c := 0; c < BoardSize; c += blockSize {
			groups[blockKey(r, c)] = nil
		}
	}

	for r, row := range board {
		lk := lineKey(r)
		for c, cell := range row {
			ck, bk := columnKey(c), blockKey(r, c)
			groups[lk] = append(groups[lk], cell)
			groups[ck] = append(groups[ck], cell)
			groups[bk] = append(groups[bk], cell)
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := ValidateGroup(groups[key], key); err != nil {
			return err
		}
	}
	return nil
}

func lineKey(r int) string   { return fmt.Sprintf("line%d", r) }
func columnKey(c int) string { return fmt.Sprintf("column%d", c) }

func blockKey(r, c int) string {
	return fmt.Sprintf("sudoku%d%d", r/blockSize, c/blockSize)
}
