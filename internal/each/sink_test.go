// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSink_Prepare(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink := NewResultSink(fs, "/dst")

	outs, err := sink.Prepare("a.txt")
	require.NoError(t, err)

	assert.Equal(t, "/dst/a.txt", outs.Dir)

	_, err = io.WriteString(outs.Stdout, "hello\n")
	require.NoError(t, err)
	require.NoError(t, outs.Close())

	info, err := fs.Stat("/dst/a.txt")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	b, err := afero.ReadFile(fs, "/dst/a.txt/out")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(b))

	b, err = afero.ReadFile(fs, "/dst/a.txt/err")
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestResultSink_PrepareTruncates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dst/a.txt/out", []byte("a much longer previous result\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/dst/a.txt/err", []byte("old error\n"), 0o644))

	outs, err := NewResultSink(fs, "/dst").Prepare("a.txt")
	require.NoError(t, err)

	_, err = io.WriteString(outs.Stdout, "new\n")
	require.NoError(t, err)
	require.NoError(t, outs.Close())

	b, err := afero.ReadFile(fs, "/dst/a.txt/out")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(b))

	b, err = afero.ReadFile(fs, "/dst/a.txt/err")
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestResultSink_PrepareErrors(t *testing.T) {
	tests := []struct {
		name      string
		errorPath string
		wantErr   error
	}{
		{name: "result directory", errorPath: "/dst/a.txt", wantErr: ErrCreateResultDir},
		{name: "stdout file", errorPath: "/dst/a.txt/out", wantErr: ErrCreateResultFile},
		{name: "stderr file", errorPath: "/dst/a.txt/err", wantErr: ErrCreateResultFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &errorFS{fs: afero.NewMemMapFs(), errorPath: tt.errorPath}

			outs, err := NewResultSink(fs, "/dst").Prepare("a.txt")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, outs)
		})
	}
}
