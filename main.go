// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the reach command-line application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/reach/cmd"
	"github.com/matt-FFFFFF/reach/internal/ctxlog"
	"github.com/matt-FFFFFF/reach/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	// runCtx stops admission of new files; ctx kills running children.
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, stop, cancel)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", cmd.Version, cmd.Commit)

	err := cmd.RootCmd.Run(cmd.WithInterrupt(runCtx, ctx), os.Args) // Err is handled by cli framework
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
