package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nestorgt/sudoku-validator/service/gridservice"
	"github.com/nestorgt/sudoku-validator/sudoku"
)

var (
	boardFile  string
	groupSpec  string
	groupLabel string
	serverURL  string
	timeout    time.Duration
)

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate [board]",
		Short: "Validate a Sudoku board or a single group",
		Long: `Validate a 9x9 Sudoku board given as 81 characters ('.' or '0' for an
empty cell), or a single group of nine values.

Examples:
  sudoku-validator validate 534678912672195348198342567859761423426853791713924856961537284287419635345286179
  sudoku-validator validate --file board.txt
  sudoku-validator validate --group 1,2,3,4,5,6,7,8,9 --label line0
  sudoku-validator validate --server http://localhost:8080 --file board.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}

	validateCmd.Flags().StringVarP(&boardFile, "file", "f", "", "Read the board from a file")
	validateCmd.Flags().StringVarP(&groupSpec, "group", "g", "", "Validate a single comma-separated group")
	validateCmd.Flags().StringVarP(&groupLabel, "label", "l", "", "Label reported for the group")
	validateCmd.Flags().StringVarP(&serverURL, "server", "s", "", "Validate against a running server instead of locally")
	validateCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Server request timeout")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if groupSpec != "" {
		numbers, err := parseGroup(groupSpec)
		if err != nil {
			return err
		}
		return report(cmd, "group", validateGroup(cmd, numbers, groupLabel))
	}

	board, err := readBoard(args)
	if err != nil {
		return err
	}
	cmd.Print(sudoku.FormatBoard(board))
	return report(cmd, "board", validateBoard(cmd, board))
}

func report(cmd *cobra.Command, what string, err error) error {
	if err != nil {
		return err
	}
	cmd.Printf("%s is valid\n", what)
	return nil
}

// readBoard takes the board text from --file or the positional argument.
func readBoard(args []string) ([][]int, error) {
	var text string
	switch {
	case boardFile != "":
		b, err := os.ReadFile(boardFile)
		if err != nil {
			return nil, fmt.Errorf("read board file: %w", err)
		}
		text = string(b)
	case len(args) == 1:
		text = args[0]
	default:
		return nil, errors.New("no board given: pass 81 characters or --file")
	}
	return sudoku.ParseBoard(text)
}

func parseGroup(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	numbers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid group value %q: %w", part, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func remoteService() (gridservice.GridService, error) {
	return gridservice.NewClient(serverURL, nil)
}

// remoteVerdict turns a server response into the caller-facing result. A
// rejection without an error payload still fails.
func remoteVerdict(resp *gridservice.ValidateResponse) error {
	if resp.Valid {
		return nil
	}
	if err := resp.Error.Err(); err != nil {
		return err
	}
	return errors.New("server rejected the grid without detail")
}

func validateBoard(cmd *cobra.Command, board [][]int) error {
	if serverURL == "" {
		return sudoku.ValidateBoard(board)
	}

	svc, err := remoteService()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := svc.ValidateBoard(ctx, &gridservice.ValidateBoardRequest{Board: board})
	if err != nil {
		return err
	}
	return remoteVerdict(resp)
}

func validateGroup(cmd *cobra.Command, numbers []int, label string) error {
	if serverURL == "" {
		return sudoku.ValidateGroup(numbers, label)
	}

	svc, err := remoteService()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := svc.ValidateGroup(ctx, &gridservice.ValidateGroupRequest{Numbers: numbers, Label: label})
	if err != nil {
		return err
	}
	return remoteVerdict(resp)
}
