// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package each runs one shell command for every regular file in a directory.
//
// For a source file F the command runs as `<shell> -c <command>` with its
// standard output and standard error captured in <destination>/F/out and
// <destination>/F/err. The file reaches the command either on standard input
// (InputStdin) or by substituting its absolute path for every "{}" in the
// command text (InputFilename).
//
// At most Config.NumProcesses commands run at once. A command that exits
// non-zero is a completed task, not an error. Failures to prepare or start a
// task are reported for that file only and never stop the other files.
package each
