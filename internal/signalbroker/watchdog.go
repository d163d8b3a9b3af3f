// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/reach/internal/ctxlog"
)

// Watch reads sigCh until it is closed or ctx is done.
// The first signal of any type calls stop. A second signal of a type already
// seen calls cancel, stops delivery to sigCh and returns.
func Watch(ctx context.Context, sigCh chan os.Signal, stop, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal, cancelling running tasks", "signal", sig.String())
				signal.Stop(sigCh)
				cancel()

				return
			}

			ctxlog.Warn(ctx, "watchdog", "detail", "received signal, no new tasks will be started", "signal", sig.String())

			seen[sig] = struct{}{}

			stop()
		}
	}
}
