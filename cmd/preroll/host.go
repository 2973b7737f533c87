package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// runHost runs the host command with the terminal handed over and maps its
// exit status onto ours.
func runHost(ctx context.Context, argv []string) error {
	c := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // G204: the user names the command
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code := ee.ExitCode()
		if code < 0 { // killed by a signal
			code = 1
		}
		return &exitError{code: code}
	}
	return &exitError{code: exitNotFound, err: fmt.Errorf("run %s: %w", argv[0], err)}
}
