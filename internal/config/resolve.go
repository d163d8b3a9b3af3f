// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/matt-FFFFFF/reach/internal/each"
)

// Options are the values given on the command line.
// Empty strings and nil pointers mean "not given".
type Options struct {
	Source      string
	Command     string
	Destination string
	Shell       string
	InputMode   string
	Processes   *int
	Recreate    *bool
	Retries     *int
}

// Resolve merges opts over file (which may be nil), fills in defaults and validates the result.
func Resolve(opts Options, file *File) (each.Config, error) {
	if file == nil {
		file = &File{}
	}

	source := first(opts.Source, file.Source)
	command := first(opts.Command, file.Command)

	if source == "" {
		return each.Config{}, fmt.Errorf("%w: no source directory given", each.ErrInvalidConfig)
	}

	if command == "" {
		return each.Config{}, fmt.Errorf("%w: no command given", each.ErrInvalidConfig)
	}

	cfg := each.Config{
		Command:        command,
		Shell:          first(opts.Shell, file.Shell, DefaultShell()),
		SourceDir:      source,
		DestinationDir: first(opts.Destination, file.Destination, DefaultDestination(source)),
		NumProcesses:   DefaultProcesses(),
		InputMode:      DefaultInputMode(command),
	}

	switch {
	case opts.Processes != nil:
		cfg.NumProcesses = *opts.Processes
	case file.Processes != 0:
		cfg.NumProcesses = file.Processes
	}

	if mode := first(opts.InputMode, file.InputMode); mode != "" {
		m, err := each.ParseInputMode(mode)
		if err != nil {
			return each.Config{}, fmt.Errorf("%w: %w", each.ErrInvalidConfig, err)
		}

		cfg.InputMode = m
	}

	if b := firstPtr(opts.Recreate, file.Recreate); b != nil {
		cfg.Recreate = *b
	}

	if n := firstPtr(opts.Retries, file.Retries); n != nil {
		cfg.Retries = *n
	}

	if err := cfg.Validate(); err != nil {
		return each.Config{}, err //nolint:wrapcheck
	}

	return cfg, nil
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstPtr[T any](vals ...*T) *T {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}

	return nil
}
