// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/reach/internal/config"
	"github.com/matt-FFFFFF/reach/internal/ctxlog"
	"github.com/matt-FFFFFF/reach/internal/each"
	"github.com/matt-FFFFFF/reach/internal/progress"
	"github.com/matt-FFFFFF/reach/internal/tui"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const cliExitStr = ""

// isTerminal reports whether w is a terminal able to host the progress bar.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	var file *config.File

	if u := cmd.String(configFlag); u != "" {
		data, err := getURL(ctx, u)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		file, err = config.ParseFile(data)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Failed to read job file %s: %s", u, err.Error()), 1)
		}

		logger.Debug("loaded job file", "url", u)
	}

	cfg, err := config.Resolve(optionsFromCommand(cmd), file)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fs := config.FsFactory()

	if err := config.EnsureDirectory(fs, cfg.DestinationDir); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Debug("resolved configuration",
		"source", cfg.SourceDir,
		"destination", cfg.DestinationDir,
		"shell", cfg.Shell,
		"processes", cfg.NumProcesses,
		"inputMode", cfg.InputMode.String())

	quiet := cmd.Bool(quietFlag)
	useTUI := !quiet && !cmd.Bool(noTUIFlag) && isTerminal(cmd.ErrWriter)

	var (
		reporter each.Reporter = each.NopReporter
		runner   *tui.Runner
		logBuf   *bytes.Buffer
	)

	switch {
	case quiet:
	case useTUI:
		logBuf = &bytes.Buffer{}
		ctx = ctxlog.NewForTUI(ctx, logBuf)
		runner = tui.NewRunner(ctx, cmd.ErrWriter)
		runner.Start()
		reporter = runner.Reporter()
	default:
		reporter = progress.NewLogReporter(ctx)
	}

	scheduler, err := each.New(cfg,
		each.WithFs(fs),
		each.WithExecutor(&each.OSExecutor{Interrupt: interruptFrom(ctx)}),
		each.WithReporter(reporter),
	)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	summary, runErr := scheduler.Run(ctx)

	if runner != nil {
		if err := runner.Finish(); err != nil {
			logger.Warn("progress display failed", "error", err.Error())
		}

		logBuf.WriteTo(cmd.ErrWriter) //nolint:errcheck
	}

	if summary != nil {
		writeSummary(cmd.Writer, summary, cfg.DestinationDir, quiet)
	}

	switch {
	case errors.Is(runErr, each.ErrCancelled):
		return cli.Exit("Interrupted: files not started were skipped", 1)
	case runErr != nil:
		return cli.Exit(runErr.Error(), 1)
	case summary.HasFailures():
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// optionsFromCommand collects the values given on the command line.
// Flags that were not set stay empty so that job-file values apply.
func optionsFromCommand(cmd *cli.Command) config.Options {
	opts := config.Options{
		Source:      cmd.StringArg(sourceArg),
		Command:     cmd.StringArg(commandArg),
		Destination: cmd.String(destinationFlag),
		Shell:       cmd.String(shellFlag),
		InputMode:   cmd.String(inputModeFlag),
	}

	if cmd.IsSet(processesFlag) {
		n := int(cmd.Int(processesFlag))
		opts.Processes = &n
	}

	if cmd.IsSet(recreateFlag) {
		b := cmd.Bool(recreateFlag)
		opts.Recreate = &b
	}

	if cmd.IsSet(retriesFlag) {
		n := int(cmd.Int(retriesFlag))
		opts.Retries = &n
	}

	return opts
}
