// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/matt-FFFFFF/reach/internal/ctxlog"
)

const (
	watchdogInterval = 30 * time.Second
	waitDelay        = 5 * time.Second
)

var (
	// ErrCouldNotStartProcess is returned when the shell cannot be spawned.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrWaitProcess is returned when waiting for the child fails for a reason other than its exit status.
	ErrWaitProcess = errors.New("could not wait for process")
	// ErrProcessKilled is returned when a child was killed because its interrupt context ended.
	ErrProcessKilled = errors.New("process killed")
)

// Executor runs an invocation to completion with its output redirected.
//
// A process that ran and exited, whatever its exit code, yields that code and
// a nil error. An error means no exit status could be determined.
type Executor interface {
	Execute(ctx context.Context, inv *Invocation, stdout, stderr io.Writer) (int, error)
}

var _ Executor = (*OSExecutor)(nil)

// OSExecutor spawns real child processes.
//
// Children are not tied to the ctx passed to Execute: once started they run
// until they exit. If Interrupt is set, children still running when it is
// done are killed.
type OSExecutor struct {
	Interrupt context.Context
}

// Execute implements Executor.
func (e *OSExecutor) Execute(ctx context.Context, inv *Invocation, stdout, stderr io.Writer) (int, error) {
	logger := ctxlog.Logger(ctx).With("executor", "os")

	interrupt := e.Interrupt
	if interrupt == nil {
		interrupt = context.Background()
	}

	cmd := exec.CommandContext(interrupt, inv.Path, inv.Args...) //nolint:gosec
	cmd.Stdin = inv.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	logger.Debug("starting process", "path", inv.Path, "args", inv.Args)

	if err := cmd.Start(); err != nil {
		return -1, errors.Join(ErrCouldNotStartProcess, err)
	}

	startTime := time.Now()
	pid := cmd.Process.Pid
	logger.Debug("process started", "pid", pid)

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(watchdogInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				logger.Info("process still running",
					"pid", pid,
					"elapsed", time.Since(startTime).Round(time.Second).String())
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()

	logger.Debug("process finished", "pid", pid, "duration", time.Since(startTime).String())

	if err != nil && interrupt.Err() != nil {
		return -1, errors.Join(ErrProcessKilled, interrupt.Err())
	}

	if errors.Is(err, exec.ErrWaitDelay) {
		// The shell exited but a descendant kept its output open.
		logger.Warn("process output still open after exit, closed", "pid", pid)
		return cmd.ProcessState.ExitCode(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug("process exited non-zero", "pid", pid, "exitCode", exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	}

	if err != nil {
		return -1, errors.Join(ErrWaitProcess, err)
	}

	return cmd.ProcessState.ExitCode(), nil
}
