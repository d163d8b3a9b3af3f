// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui draws a live progress bar while files are processed.
//
// The bar shows a status prefix, the number of finished files against the
// total, the elapsed time and the completion rate. Failures and non-zero
// exits are printed above the bar as they happen.
package tui
