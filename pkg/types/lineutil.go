package types

import "strings"

// Line is one physical line read from a source.
// Text keeps its terminator when the source had one.
type Line struct {
	Text   string
	Number int // 1-based position within the source
}

// NewLine builds a Line from raw text and its ordinal.
func NewLine(text string, number int) Line {
	return Line{Text: text, Number: number}
}

// Content returns the line without its trailing newline.
func (l Line) Content() string {
	return strings.TrimSuffix(l.Text, "\n")
}

// HasTerminator reports whether the line ended with a newline.
func (l Line) HasTerminator() bool {
	return strings.HasSuffix(l.Text, "\n")
}

// IsBlank is true iff the line is empty once its terminator is stripped.
func (l Line) IsBlank() bool {
	return l.Content() == ""
}

// SplitLines splits content into Lines, keeping terminators.
// A trailing fragment without a newline becomes the final line.
func SplitLines(content string) []Line {
	var lines []Line
	n := 0
	for len(content) > 0 {
		n++
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, NewLine(content, n))
			break
		}
		lines = append(lines, NewLine(content[:i+1], n))
		content = content[i+1:]
	}
	return lines
}
