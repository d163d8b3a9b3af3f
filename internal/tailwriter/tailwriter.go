// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tailwriter

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

// maxPartial bounds the bytes kept for a line that has not ended yet.
const maxPartial = 4096

// Writer forwards writes to w and tracks the last complete line.
// It is safe for concurrent use.
type Writer struct {
	w        io.Writer
	lastLine string
	partial  []byte
	mu       sync.RWMutex
}

// New returns a Writer forwarding to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements io.Writer. Line tracking covers only the bytes w accepted.
func (t *Writer) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.mu.Lock()
		t.track(p[:n])
		t.mu.Unlock()
	}

	return n, err //nolint:wrapcheck
}

// track must be called with the write lock held.
func (t *Writer) track(data []byte) {
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}

		line := append(t.partial, data[:i]...)
		t.lastLine = strings.TrimRight(string(line), "\r")
		t.partial = t.partial[:0]
		data = data[i+1:]
	}

	if room := maxPartial - len(t.partial); room > 0 {
		if len(data) > room {
			data = data[:room]
		}

		t.partial = append(t.partial, data...)
	}
}

// LastLine returns the last complete line, without its line ending.
// If maxLength > 3 and the line is longer, it is cut and ends in "...".
func (t *Writer) LastLine(maxLength int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	line := t.lastLine
	if maxLength > 3 && len(line) > maxLength {
		line = line[:maxLength-3] + "..."
	}

	return line
}

// Partial returns the bytes written after the last newline.
func (t *Writer) Partial() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return string(t.partial)
}

// Tail returns the last complete line, or the unterminated partial
// line when nothing has ended yet.
func (t *Writer) Tail(maxLength int) string {
	if line := t.LastLine(maxLength); line != "" {
		return line
	}

	p := strings.TrimRight(t.Partial(), "\r")
	if maxLength > 3 && len(p) > maxLength {
		p = p[:maxLength-3] + "..."
	}

	return p
}
