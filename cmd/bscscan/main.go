package main

import (
	"errors"
	"fmt"
	"os"

	"bscscan_node/internal/domain/entity"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitTransport = 3
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitOK)
}

// exitCode maps an action failure onto the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, entity.ErrConfiguration), errors.Is(err, entity.ErrPrecondition):
		return exitUsage
	case errors.Is(err, entity.ErrTransport):
		return exitTransport
	default:
		return exitFailure
	}
}
