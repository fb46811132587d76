package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCat(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		input string
		want  string
	}{
		{
			name:  "plain copy",
			setup: func() {},
			input: "a\tb\nc",
			want:  "a\tb\nc",
		},
		{
			name:  "number squeezed",
			setup: func() { catNumber, catSqueezeBlank = true, true },
			input: "foo\n\n\nbar\n",
			want:  "     1  foo\n     2  \n     2  \n     3  bar\n",
		},
		{
			name:  "number non-blank",
			setup: func() { catNumberNonBlank = true },
			input: "foo\n\nbar\n",
			want:  "     1  foo\n\n     3  bar\n",
		},
		{
			name:  "show ends",
			setup: func() { catShowEnds = true },
			input: "abc\nabc",
			want:  "abc$abc$",
		},
		{
			name:  "show tabs",
			setup: func() { catShowTabs = true },
			input: "a\tb\n",
			want:  "a^Ib\n",
		},
		{
			name:  "show tabs and ends",
			setup: func() { catShowTabsEnds = true },
			input: "a\tb\n",
			want:  "a^Ib$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			tt.setup()

			cmd, out, _ := newTestCmd(tt.input)
			err := runCat(cmd, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunCat_FilesInOrder(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "first\n")
	b := writeFile(t, dir, "b.txt", "second\n")
	missing := filepath.Join(dir, "missing.txt")

	cmd, out, errOut := newTestCmd("middle\n")
	err := runCat(cmd, []string{a, missing, "-", b})
	require.NoError(t, err, "cat exits 0 even when a source is skipped")
	assert.Equal(t, "first\nmiddle\nsecond\n", out.String())
	assert.Contains(t, errOut.String(), "could not open file: "+missing)
}
