// Package cli implements the packs command line.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/bwillis/packs/pkg/errors"
)

// Exit codes
const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}).
	Bold(true)

// Run executes the command line and returns the process exit code
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	if errors.IsConfigurationError(err) {
		return exitConfig
	}
	return exitError
}
