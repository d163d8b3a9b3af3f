// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const shellCommandSwitch = "-c"

var (
	// ErrOpenSource is returned when a source file cannot be opened for stdin delivery.
	ErrOpenSource = errors.New("could not open source file")
	// ErrUnsupportedPath is returned in filename mode when the source path is not valid UTF-8.
	ErrUnsupportedPath = errors.New("unsupported path: not valid UTF-8")
)

// SourceFile is one directory entry selected for processing.
type SourceFile struct {
	// Name is the entry name relative to the source directory.
	Name string
	// Path is the absolute path to the entry.
	Path string
}

// Invocation is a fully built shell command for one source file.
type Invocation struct {
	// Path is the shell executable.
	Path string
	// Args are the arguments after the executable name.
	Args []string
	// Stdin is the source file in stdin mode, nil in filename mode.
	Stdin io.Reader
}

// Close releases the standard input file, if any.
func (i *Invocation) Close() error {
	if c, ok := i.Stdin.(io.Closer); ok {
		return c.Close() //nolint:wrapcheck
	}

	return nil
}

// String renders the invocation for logs.
func (i *Invocation) String() string {
	return strings.Join(append([]string{i.Path}, i.Args...), " ")
}

// Invocation builds the command for src.
// In stdin mode the file is opened from fs and command is used verbatim.
// In filename mode every "{}" in command is replaced by src.Path.
func (m InputMode) Invocation(fs afero.Fs, shell, command string, src SourceFile) (*Invocation, error) {
	switch m {
	case InputStdin:
		f, err := fs.Open(src.Path)
		if err != nil {
			return nil, errors.Join(ErrOpenSource, err)
		}

		return &Invocation{
			Path:  shell,
			Args:  []string{shellCommandSwitch, command},
			Stdin: f,
		}, nil

	case InputFilename:
		if !utf8.ValidString(src.Path) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedPath, src.Path)
		}

		return &Invocation{
			Path: shell,
			Args: []string{shellCommandSwitch, strings.ReplaceAll(command, FilenamePlaceholder, src.Path)},
		}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrInvalidInputMode, int(m))
}
