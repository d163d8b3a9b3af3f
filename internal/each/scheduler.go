// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/matt-FFFFFF/reach/internal/ctxlog"
	"github.com/matt-FFFFFF/reach/internal/tailwriter"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// maxStderrLine bounds Outcome.LastStderrLine.
const maxStderrLine = 200

var (
	// ErrReadSourceDir is returned when the source directory cannot be listed. No task is started.
	ErrReadSourceDir = errors.New("could not read source directory")
	// ErrStatSource is returned for a directory entry whose metadata cannot be read.
	ErrStatSource = errors.New("could not stat source file")
	// ErrCancelled is returned for tasks that were not started because the run was stopped.
	ErrCancelled = errors.New("run cancelled before task started")
)

// Scheduler runs a Config over its source directory.
type Scheduler struct {
	cfg      Config
	fs       afero.Fs
	executor Executor
	reporter Reporter
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithFs sets the filesystem used for enumeration, stdin files and results. Default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Scheduler) {
		s.fs = fs
	}
}

// WithExecutor sets the process executor. Default is an OSExecutor.
func WithExecutor(e Executor) Option {
	return func(s *Scheduler) {
		s.executor = e
	}
}

// WithReporter sets the progress reporter. Default is NopReporter.
func WithReporter(r Reporter) Option {
	return func(s *Scheduler) {
		if r != nil {
			s.reporter = r
		}
	}
}

// New validates cfg and returns a Scheduler for it.
func New(cfg Config, opts ...Option) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		cfg:      cfg,
		fs:       afero.NewOsFs(),
		executor: &OSExecutor{},
		reporter: NopReporter,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run builds a Scheduler for cfg and runs it.
func Run(ctx context.Context, cfg Config, reporter Reporter) (*Summary, error) {
	s, err := New(cfg, WithReporter(reporter))
	if err != nil {
		return nil, err
	}

	return s.Run(ctx)
}

type pending struct {
	file SourceFile
	err  error
}

// Run processes every regular file directly inside the source directory.
//
// It returns an error wrapping ErrReadSourceDir, with a nil Summary, when the
// directory cannot be listed. When ctx ends, tasks not yet started are
// reported with ErrCancelled, running tasks finish, and Run returns the
// Summary together with ErrCancelled. Any other per-file failure is only
// recorded in the Summary.
func (s *Scheduler) Run(ctx context.Context) (*Summary, error) {
	logger := ctxlog.Logger(ctx).With("component", "scheduler")

	if s.cfg.Recreate {
		logger.Warn("recreate is accepted but not implemented, results are always overwritten")
	}

	if s.cfg.Retries > 0 {
		logger.Warn("retries are accepted but not implemented, each file runs once", "retries", s.cfg.Retries)
	}

	sourceDir, err := filepath.Abs(s.cfg.SourceDir)
	if err != nil {
		return nil, errors.Join(ErrReadSourceDir, err)
	}

	tasks, err := s.discover(ctx, sourceDir)
	if err != nil {
		return nil, err
	}

	logger.Debug("discovered tasks", "sourceDir", sourceDir, "tasks", len(tasks), "processes", s.cfg.NumProcesses)
	s.reporter.SetNumTasks(len(tasks))

	sink := NewResultSink(s.fs, s.cfg.DestinationDir)
	outcomes := make([]Outcome, len(tasks))

	g := &errgroup.Group{}
	g.SetLimit(s.cfg.NumProcesses)

	for i, t := range tasks {
		g.Go(func() error {
			outcomes[i] = s.runTask(ctx, sink, t)
			s.reporter.TaskCompleted(outcomes[i])

			return nil
		})
	}

	_ = g.Wait()

	summary := newSummary(outcomes)
	logger.Debug("run finished",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"nonZeroExit", summary.NonZeroExit,
		"failed", summary.Failed)

	if ctx.Err() != nil {
		for _, o := range outcomes {
			if errors.Is(o.Err, ErrCancelled) {
				return summary, errors.Join(ErrCancelled, ctx.Err())
			}
		}
	}

	return summary, nil
}

// discover lists dir and keeps regular files. Entries whose metadata cannot
// be read are kept so that their failure is reported as a task outcome.
func (s *Scheduler) discover(ctx context.Context, dir string) ([]pending, error) {
	d, err := s.fs.Open(dir)
	if err != nil {
		return nil, errors.Join(ErrReadSourceDir, err)
	}

	defer d.Close() //nolint:errcheck

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, errors.Join(ErrReadSourceDir, err)
	}

	tasks := make([]pending, 0, len(names))

	for _, name := range names {
		file := SourceFile{Name: name, Path: filepath.Join(dir, name)}

		info, err := lstat(s.fs, file.Path)
		if err != nil {
			tasks = append(tasks, pending{file: file, err: errors.Join(ErrStatSource, err)})
			continue
		}

		if !info.Mode().IsRegular() {
			ctxlog.Debug(ctx, "skipping entry that is not a regular file", "source", name, "mode", info.Mode().String())
			continue
		}

		tasks = append(tasks, pending{file: file})
	}

	return tasks, nil
}

func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err //nolint:wrapcheck
	}

	return fs.Stat(path) //nolint:wrapcheck
}

// runTask prepares the result location, builds the command and runs it.
// Everything it opens is closed before it returns.
func (s *Scheduler) runTask(ctx context.Context, sink *ResultSink, t pending) Outcome {
	started := time.Now()
	logger := ctxlog.Logger(ctx).With("source", t.file.Name)

	if t.err != nil {
		logger.Debug("task failed before start", "error", t.err)
		return failed(t.file.Name, t.err, started)
	}

	if err := ctx.Err(); err != nil {
		return failed(t.file.Name, errors.Join(ErrCancelled, err), started)
	}

	outs, err := sink.Prepare(t.file.Name)
	if err != nil {
		logger.Debug("could not prepare result location", "error", err)
		return failed(t.file.Name, err, started)
	}

	o := s.invoke(ctx, outs, t.file, started)

	if err := outs.Close(); err != nil && o.Err == nil {
		o.ExitCode = -1
		o.Err = err
	}

	return o
}

func (s *Scheduler) invoke(ctx context.Context, outs *ResultOutputs, file SourceFile, started time.Time) Outcome {
	inv, err := s.cfg.InputMode.Invocation(s.fs, s.cfg.Shell, s.cfg.Command, file)
	if err != nil {
		return failed(file.Name, err, started)
	}

	defer inv.Close() //nolint:errcheck

	stderr := tailwriter.New(outs.Stderr)

	code, err := s.executor.Execute(ctxlog.New(ctx, ctxlog.Logger(ctx).With("source", file.Name)), inv, outs.Stdout, stderr)
	if err != nil {
		return failed(file.Name, err, started)
	}

	return Outcome{
		Source:         file.Name,
		ExitCode:       code,
		LastStderrLine: stderr.Tail(maxStderrLine),
		Duration:       time.Since(started),
	}
}
