// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI SGR escape codes for terminal output.
//
// Colour is decided once, at package init. NO_COLOR disables it, FORCE_COLOR
// enables it, and otherwise it is enabled only when stdout is a terminal.
package color
