package main

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailed      = 1
	exitUsage       = 2
	exitInterrupted = 130
)

var errTestsFailed = errors.New("tests failed")

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

// exitCode maps the command's error to a process exit code, reporting it on
// stderr unless it only signals failing tests.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if !errors.As(err, &ee) {
		fmt.Fprintf(stderr, "pspec: %v\n", err)
		return exitUsage
	}
	if !errors.Is(ee.err, errTestsFailed) && !errors.Is(ee.err, context.Canceled) {
		fmt.Fprintf(stderr, "pspec: %v\n", ee.err)
	}
	return ee.code
}
