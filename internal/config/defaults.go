// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/reach/internal/each"
	"github.com/spf13/afero"
)

const (
	// ShellEnvVar names the environment variable holding the user's shell.
	ShellEnvVar = "SHELL"
	// FallbackShell is used when ShellEnvVar is unset or empty.
	FallbackShell = "/bin/sh"
	// DestinationSuffix is appended to the source path to form the default destination.
	DestinationSuffix = "-results"

	directoryMode = 0o755
)

var (
	// ErrEnsureDirectory is returned when a directory cannot be created.
	ErrEnsureDirectory = errors.New("could not create directory")
	// ErrNotADirectory is returned when a path that must be a directory is something else.
	ErrNotADirectory = errors.New("not a directory")
)

// Hooks for tests.
var (
	Getenv    = os.Getenv
	NumCPU    = runtime.NumCPU
	FsFactory = func() afero.Fs {
		return afero.NewOsFs()
	}
)

// DefaultDestination proposes "<source>-results" for a source directory.
// Trailing separators on source are dropped first.
func DefaultDestination(source string) string {
	return filepath.Clean(source) + DestinationSuffix
}

// DefaultShell returns $SHELL, or /bin/sh when it is not set.
func DefaultShell() string {
	if sh := Getenv(ShellEnvVar); sh != "" {
		return sh
	}

	return FallbackShell
}

// DefaultProcesses returns the number of logical CPUs, at least 1.
func DefaultProcesses() int {
	return max(NumCPU(), 1)
}

// DefaultInputMode selects filename mode when command contains the placeholder.
func DefaultInputMode(command string) each.InputMode {
	if strings.Contains(command, each.FilenamePlaceholder) {
		return each.InputFilename
	}

	return each.InputStdin
}

// EnsureDirectory creates path and any missing parents.
// An existing directory is not an error; an existing non-directory is.
func EnsureDirectory(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(path, directoryMode); err != nil {
		return errors.Join(ErrEnsureDirectory, err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		return errors.Join(ErrEnsureDirectory, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %w: %s", ErrEnsureDirectory, ErrNotADirectory, path)
	}

	return nil
}
