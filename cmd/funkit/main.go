// Command funkit exercises funkit's cells and action chains from the shell.
package main

import (
	"os"

	"github.com/kbukum/funkit/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for bad input or configuration and 1 for anything else.
func exitCode(err error) int {
	switch errors.Wrap(err).Code {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidValue:
		return 2
	default:
		return 1
	}
}
