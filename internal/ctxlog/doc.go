// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes to stderr through PrettyHandler. Its level is read
// once from <EXECUTABLE>_LOG_LEVEL (REACH_LOG_LEVEL for the reach binary) and
// may be one of DEBUG, INFO, WARN or ERROR. Anything else means WARN.
package ctxlog
