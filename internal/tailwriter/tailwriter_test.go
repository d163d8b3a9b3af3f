// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tailwriter

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ForwardsAndTracks(t *testing.T) {
	tests := []struct {
		name        string
		writes      []string
		wantLast    string
		wantPartial string
	}{
		{
			name:     "single line",
			writes:   []string{"hello\n"},
			wantLast: "hello",
		},
		{
			name:     "multiple lines in one write",
			writes:   []string{"one\ntwo\nthree\n"},
			wantLast: "three",
		},
		{
			name:        "line split across writes",
			writes:      []string{"par", "tial\nnext"},
			wantLast:    "partial",
			wantPartial: "next",
		},
		{
			name:        "no newline yet",
			writes:      []string{"still going"},
			wantPartial: "still going",
		},
		{
			name:     "crlf endings",
			writes:   []string{"windows\r\n"},
			wantLast: "windows",
		},
		{
			name:     "empty line is the last line",
			writes:   []string{"text\n\n"},
			wantLast: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			w := New(&buf)
			for _, s := range tt.writes {
				n, err := w.Write([]byte(s))
				require.NoError(t, err)
				assert.Equal(t, len(s), n)
			}

			assert.Equal(t, strings.Join(tt.writes, ""), buf.String())
			assert.Equal(t, tt.wantLast, w.LastLine(0))
			assert.Equal(t, tt.wantPartial, w.Partial())
		})
	}
}

func TestWriter_LastLineTruncates(t *testing.T) {
	w := New(&bytes.Buffer{})
	_, _ = w.Write([]byte("0123456789\n"))

	assert.Equal(t, "0123...", w.LastLine(7))
	assert.Equal(t, "0123456789", w.LastLine(20))
}

func TestWriter_Tail(t *testing.T) {
	w := New(&bytes.Buffer{})
	_, _ = w.Write([]byte("no newline"))
	assert.Equal(t, "no newline", w.Tail(0))

	_, _ = w.Write([]byte("\nlast\n"))
	assert.Equal(t, "last", w.Tail(0))
}

func TestWriter_PartialIsBounded(t *testing.T) {
	w := New(&bytes.Buffer{})
	_, _ = w.Write(bytes.Repeat([]byte("x"), maxPartial*2))

	assert.Len(t, w.Partial(), maxPartial)
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return 3, errors.New("short write")
}

func TestWriter_TracksOnlyAcceptedBytes(t *testing.T) {
	w := New(shortWriter{})

	n, err := w.Write([]byte("ab\ncd\n"))
	require.Error(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "ab", w.LastLine(0))
}

func TestWriter_Concurrent(t *testing.T) {
	var (
		mu  sync.Mutex
		buf bytes.Buffer
	)

	w := New(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = w.Write([]byte("line\n"))
			_ = w.LastLine(0)
		}()
	}

	wg.Wait()

	assert.Equal(t, strings.Repeat("line\n", 10), buf.String())
	assert.Equal(t, "line", w.LastLine(0))
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
