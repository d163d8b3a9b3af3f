// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

var (
	// ErrReadConfigFile is returned when the job file cannot be read from disk.
	ErrReadConfigFile = errors.New("could not read config file")
	// ErrParseConfigFile is returned when the job file is not valid YAML or has unknown keys.
	ErrParseConfigFile = errors.New("could not parse config file")
)

// File is the YAML job file. Every field is optional; command line values win.
type File struct {
	Command     string `yaml:"command"`
	Shell       string `yaml:"shell"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Processes   int    `yaml:"processes"`
	InputMode   string `yaml:"input_mode"`
	Recreate    *bool  `yaml:"recreate"`
	Retries     *int   `yaml:"retries"`
}

// ParseFile decodes a job file, rejecting keys it does not know.
func ParseFile(data []byte) (*File, error) {
	f := &File{}

	if err := yaml.UnmarshalWithOptions(data, f, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfigFile, err)
	}

	return f, nil
}

// LoadFile reads and parses the job file at path.
func LoadFile(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Join(ErrReadConfigFile, err)
	}

	return ParseFile(data)
}
