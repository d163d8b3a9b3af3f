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

func TestInvocation_Stdin(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.txt", []byte("A\n"), 0o644))

	inv, err := InputStdin.Invocation(fs, "/bin/sh", "wc -l {}", SourceFile{Name: "a.txt", Path: "/src/a.txt"})
	require.NoError(t, err)

	defer inv.Close() //nolint:errcheck

	assert.Equal(t, "/bin/sh", inv.Path)
	assert.Equal(t, []string{"-c", "wc -l {}"}, inv.Args, "stdin mode must not substitute")
	require.NotNil(t, inv.Stdin)

	b, err := io.ReadAll(inv.Stdin)
	require.NoError(t, err)
	assert.Equal(t, "A\n", string(b))
}

func TestInvocation_StdinMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := InputStdin.Invocation(fs, "/bin/sh", "cat", SourceFile{Name: "gone", Path: "/src/gone"})
	require.ErrorIs(t, err, ErrOpenSource)
}

func TestInvocation_Filename(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "single placeholder", command: "echo -n {}", want: "echo -n /src/a b.txt"},
		{name: "every placeholder", command: "cp {} {}.bak", want: "cp /src/a b.txt /src/a b.txt.bak"},
		{name: "no placeholder", command: "date", want: "date"},
		{name: "braces with content untouched", command: "echo {x} {}", want: "echo {x} /src/a b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := InputFilename.Invocation(afero.NewMemMapFs(), "/bin/bash", tt.command,
				SourceFile{Name: "a b.txt", Path: "/src/a b.txt"})
			require.NoError(t, err)

			assert.Equal(t, "/bin/bash", inv.Path)
			assert.Equal(t, []string{"-c", tt.want}, inv.Args)
			assert.Nil(t, inv.Stdin)
			assert.NoError(t, inv.Close())
		})
	}
}

func TestInvocation_FilenameInvalidUTF8(t *testing.T) {
	bad := "/src/\xff\xfe.txt"

	_, err := InputFilename.Invocation(afero.NewMemMapFs(), "/bin/sh", "cat {}", SourceFile{Name: "\xff\xfe.txt", Path: bad})
	require.ErrorIs(t, err, ErrUnsupportedPath)
}

func TestInvocation_UnknownMode(t *testing.T) {
	_, err := InputMode(9).Invocation(afero.NewMemMapFs(), "/bin/sh", "cat", SourceFile{})
	require.ErrorIs(t, err, ErrInvalidInputMode)
}

func TestInvocation_String(t *testing.T) {
	inv := &Invocation{Path: "/bin/sh", Args: []string{"-c", "cat"}}
	assert.Equal(t, "/bin/sh -c cat", inv.String())
}
