package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "sudoku-validator",
	Short: "Validate Sudoku grids",
	Long: `Validate 9x9 Sudoku boards and single rows, columns or 3x3 blocks.

A valid group holds the digits 1-9 exactly once; a valid board is 27 valid
groups. The first broken group is reported, always the same one for a given
board.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
