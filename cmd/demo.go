package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nestorgt/sudoku-validator/sudoku"
)

func init() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Validate a few built-in sample grids",
		RunE:  runDemo,
	}

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	solved := [][]int{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}

	broken := make([][]int, len(solved))
	copy(broken, solved)
	broken[0] = []int{2, 2, 2, 2, 2, 2, 2, 2, 2}

	boards := []struct {
		name  string
		board [][]int
	}{
		{name: "solved board", board: solved},
		{name: "first row all twos", board: broken},
		{name: "eight rows", board: solved[:8]},
	}

	groups := []struct {
		name    string
		numbers []int
		label   string
	}{
		{name: "digits in order", numbers: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "out-of-range value", numbers: []int{1, 2, 3, 4, 55, 6, 7, 8, 9}, label: "line0"},
		{name: "empty group", numbers: nil, label: "column4"},
	}

	for _, d := range boards {
		cmd.Printf("%s:\n", d.name)
		cmd.Print(sudoku.FormatBoard(d.board))
		printOutcome(cmd, sudoku.ValidateBoard(d.board))
	}
	for _, d := range groups {
		cmd.Printf("group %v (%s):\n", d.numbers, d.name)
		printOutcome(cmd, sudoku.ValidateGroup(d.numbers, d.label))
	}
	return nil
}

func printOutcome(cmd *cobra.Command, err error) {
	if err != nil {
		cmd.Printf("  -> %v\n\n", err)
		return
	}
	cmd.Print("  -> valid\n\n")
}
