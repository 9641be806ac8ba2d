package cli

import (
	"errors"
	"fmt"
	"io"

	"smoke-env/internal/target"
)

const (
	exitOK = iota
	exitRisk
	exitFatal
)

// Run executes the command line and returns the exit code:
// 0 on success, 1 when the token is missing, 2 on any other failure.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	if errors.Is(err, target.ErrTokenMissing) {
		return exitRisk
	}
	return exitFatal
}
