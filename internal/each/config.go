// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is returned when a Config cannot be run.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidInputMode is returned when an input mode name is not recognised.
	ErrInvalidInputMode = errors.New("no such input mode")
)

// InputMode selects how a source file reaches the command.
type InputMode int

const (
	// InputStdin streams the file contents to the command's standard input.
	InputStdin InputMode = iota
	// InputFilename substitutes the file's absolute path for every "{}" in the command.
	InputFilename
)

// FilenamePlaceholder is replaced by the source path in filename mode.
const FilenamePlaceholder = "{}"

// ParseInputMode parses "stdin" or "filename", ignoring case.
func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(s) {
	case "stdin":
		return InputStdin, nil
	case "filename":
		return InputFilename, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidInputMode, s)
	}
}

// String implements fmt.Stringer.
func (m InputMode) String() string {
	switch m {
	case InputStdin:
		return "stdin"
	case InputFilename:
		return "filename"
	default:
		return "unknown"
	}
}

// Config is the read-only description of one run.
type Config struct {
	// Command is the shell command text. In filename mode it may contain "{}".
	Command string
	// Shell is the interpreter, invoked as `Shell -c Command`.
	Shell string
	// SourceDir holds the files to process. Only its direct regular-file children are used.
	SourceDir string
	// DestinationDir receives one result directory per source file.
	DestinationDir string
	// NumProcesses is the concurrency ceiling. Must be at least 1.
	NumProcesses int
	// InputMode selects stdin or filename delivery for the whole run.
	InputMode InputMode
	// Recreate is accepted but not acted on: results are always overwritten.
	Recreate bool
	// Retries is accepted but not acted on: each file runs once.
	Retries int
}

// Validate reports the first problem that would stop c from running.
func (c Config) Validate() error {
	switch {
	case c.Command == "":
		return fmt.Errorf("%w: command is empty", ErrInvalidConfig)
	case c.Shell == "":
		return fmt.Errorf("%w: shell is empty", ErrInvalidConfig)
	case c.SourceDir == "":
		return fmt.Errorf("%w: source directory is empty", ErrInvalidConfig)
	case c.DestinationDir == "":
		return fmt.Errorf("%w: destination directory is empty", ErrInvalidConfig)
	case c.NumProcesses < 1:
		return fmt.Errorf("%w: number of processes must be at least 1, got %d", ErrInvalidConfig, c.NumProcesses)
	case c.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalidConfig, c.Retries)
	case c.InputMode != InputStdin && c.InputMode != InputFilename:
		return fmt.Errorf("%w: %w %d", ErrInvalidConfig, ErrInvalidInputMode, int(c.InputMode))
	}

	return nil
}
