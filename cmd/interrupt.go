// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import "context"

type interruptKey struct{}

// WithInterrupt returns a copy of ctx carrying interrupt.
// Child processes still running when interrupt is done are killed.
func WithInterrupt(ctx, interrupt context.Context) context.Context {
	return context.WithValue(ctx, interruptKey{}, interrupt)
}

func interruptFrom(ctx context.Context) context.Context {
	if interrupt, ok := ctx.Value(interruptKey{}).(context.Context); ok && interrupt != nil {
		return interrupt
	}

	return context.Background()
}
