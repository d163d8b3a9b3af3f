// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestOSExecutor_Execute(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	tests := []struct {
		name       string
		inv        *Invocation
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "success",
			inv:        &Invocation{Path: "/bin/sh", Args: []string{"-c", "echo hello"}},
			wantStdout: "hello\n",
		},
		{
			name:       "stderr",
			inv:        &Invocation{Path: "/bin/sh", Args: []string{"-c", "echo oops >&2"}},
			wantStderr: "oops\n",
		},
		{
			name:     "non-zero exit",
			inv:      &Invocation{Path: "/bin/sh", Args: []string{"-c", "exit 3"}},
			wantCode: 3,
		},
		{
			name:       "stdin",
			inv:        &Invocation{Path: "/bin/sh", Args: []string{"-c", "cat"}, Stdin: strings.NewReader("from stdin")},
			wantStdout: "from stdin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code, err := (&OSExecutor{}).Execute(context.Background(), tt.inv, &stdout, &stderr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestOSExecutor_CouldNotStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	var stdout, stderr bytes.Buffer

	code, err := (&OSExecutor{}).Execute(context.Background(),
		&Invocation{Path: "/this/shell/does/not/exist", Args: []string{"-c", "true"}}, &stdout, &stderr)
	require.ErrorIs(t, err, ErrCouldNotStartProcess)
	assert.Equal(t, -1, code)
}

func TestOSExecutor_IgnoresTaskContext(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())

	var stdout bytes.Buffer

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	code, err := (&OSExecutor{}).Execute(ctx,
		&Invocation{Path: "/bin/sh", Args: []string{"-c", "sleep 0.2; echo done"}}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "done\n", stdout.String())
}

func TestOSExecutor_Interrupt(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	interrupt, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()

	code, err := (&OSExecutor{Interrupt: interrupt}).Execute(context.Background(),
		&Invocation{Path: "/bin/sleep", Args: []string{"10"}}, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrProcessKilled)
	assert.Equal(t, -1, code)
	assert.Less(t, time.Since(start), 5*time.Second)
}
