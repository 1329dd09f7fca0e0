package main

import (
	"os"

	"github.com/nestorgt/sudoku-validator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
