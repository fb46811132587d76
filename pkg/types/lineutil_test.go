package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantContent    string
		wantTerminator bool
		wantBlank      bool
	}{
		{
			name:           "terminated line",
			text:           "abc\n",
			wantContent:    "abc",
			wantTerminator: true,
		},
		{
			name:        "final line without newline",
			text:        "abc",
			wantContent: "abc",
		},
		{
			name:           "blank line",
			text:           "\n",
			wantContent:    "",
			wantTerminator: true,
			wantBlank:      true,
		},
		{
			name:        "whitespace is not blank",
			text:        " \t",
			wantContent: " \t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(tt.text, 1)
			assert.Equal(t, tt.wantContent, l.Content())
			assert.Equal(t, tt.wantTerminator, l.HasTerminator())
			assert.Equal(t, tt.wantBlank, l.IsBlank())
		})
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("foo\n\nbar")
	assert.Equal(t, []Line{
		{Text: "foo\n", Number: 1},
		{Text: "\n", Number: 2},
		{Text: "bar", Number: 3},
	}, lines)

	assert.Empty(t, SplitLines(""))
}
