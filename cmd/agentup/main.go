package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.FgRed.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
