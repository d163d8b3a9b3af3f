// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"errors"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

const (
	// StdoutFileName is the file in a result directory that captures standard output.
	StdoutFileName = "out"
	// StderrFileName is the file in a result directory that captures standard error.
	StderrFileName = "err"

	resultDirMode = 0o755
)

var (
	// ErrCreateResultDir is returned when a per-file result directory cannot be created.
	ErrCreateResultDir = errors.New("could not create result directory")
	// ErrCreateResultFile is returned when an out or err file cannot be created.
	ErrCreateResultFile = errors.New("could not create result file")
	// ErrCloseResultFile is returned when an out or err file cannot be closed after the process exits.
	ErrCloseResultFile = errors.New("could not close result file")
)

// ResultSink owns the destination tree.
type ResultSink struct {
	fs   afero.Fs
	root string
}

// ResultOutputs are the two capture files for one source file.
// The task that prepared them owns them until Close.
type ResultOutputs struct {
	Dir    string
	Stdout afero.File
	Stderr afero.File
}

// NewResultSink returns a sink writing under root on fs.
func NewResultSink(fs afero.Fs, root string) *ResultSink {
	return &ResultSink{fs: fs, root: root}
}

// Dir returns the result directory for a source file name.
func (s *ResultSink) Dir(name string) string {
	return filepath.Join(s.root, name)
}

// Prepare creates <root>/<name> and truncates or creates its out and err files.
func (s *ResultSink) Prepare(name string) (*ResultOutputs, error) {
	dir := s.Dir(name)

	if err := s.fs.MkdirAll(dir, resultDirMode); err != nil {
		return nil, errors.Join(ErrCreateResultDir, err)
	}

	stdout, err := s.fs.Create(filepath.Join(dir, StdoutFileName))
	if err != nil {
		return nil, errors.Join(ErrCreateResultFile, err)
	}

	stderr, err := s.fs.Create(filepath.Join(dir, StderrFileName))
	if err != nil {
		_ = stdout.Close()
		return nil, errors.Join(ErrCreateResultFile, err)
	}

	return &ResultOutputs{Dir: dir, Stdout: stdout, Stderr: stderr}, nil
}

// Close closes both capture files.
func (o *ResultOutputs) Close() error {
	var result *multierror.Error

	if err := o.Stdout.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := o.Stderr.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrCloseResultFile, err)
	}

	return nil
}
