// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress provides headless implementations of each.Reporter:
// a counter, a structured-log reporter for non-terminal output, and a fan-out.
package progress
