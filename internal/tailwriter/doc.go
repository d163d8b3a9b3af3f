// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tailwriter provides an io.Writer that forwards everything to an
// underlying writer while remembering the last complete line written.
package tailwriter
