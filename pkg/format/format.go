// Package format renders lines for display.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/praetorian-inc/sift/pkg/types"
)

// Render returns line as it should be displayed under cfg.
//
// number is the display ordinal to print, or 0 for none. When cfg asks
// for numbering the prefix is still subject to Numbered: -b leaves blank
// lines unnumbered. The prefix is coloured with p, which may be nil.
func Render(line types.Line, number int, cfg types.DisplayConfig, p *Palette) string {
	var b strings.Builder
	if number > 0 && cfg.Numbered(line.IsBlank()) {
		b.WriteString(p.LineNumber(Prefix(number, cfg.NumberStyle)))
	}

	text := line.Text
	if cfg.EscapeTabs {
		text = EscapeTabs(text)
	}
	if cfg.ShowEndMarker {
		text = MarkEnd(text)
	}
	b.WriteString(text)
	return b.String()
}

// Prefix formats a line number in the given style.
func Prefix(number int, style types.NumberStyle) string {
	if style == types.NumberStyleGrep {
		return strconv.Itoa(number) + ":"
	}
	return fmt.Sprintf("%6d  ", number)
}

// EscapeTabs replaces every tab with the two characters ^I.
func EscapeTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + strings.Count(s, "\t"))
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			b.WriteString("^I")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// MarkEnd replaces a trailing newline with $, or appends $ when the line
// has no terminator.
func MarkEnd(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1] + "$"
	}
	return s + "$"
}
