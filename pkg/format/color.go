package format

import "github.com/fatih/color"

// Palette colours the parts of grep output that carry meaning to a reader.
type Palette struct {
	match      *color.Color
	lineNumber *color.Color
	filename   *color.Color
}

// NewPalette returns a palette that emits ANSI escapes only when enabled is
// true, independent of the color package's global NoColor setting.
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		match:      color.New(color.Bold, color.FgRed),
		lineNumber: color.New(color.FgGreen),
		filename:   color.New(color.FgMagenta),
	}
	for _, c := range []*color.Color{p.match, p.lineNumber, p.filename} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Match colours a matched span.
func (p *Palette) Match(s string) string {
	if p == nil {
		return s
	}
	return p.match.Sprint(s)
}

// LineNumber colours a line-number prefix.
func (p *Palette) LineNumber(s string) string {
	if p == nil {
		return s
	}
	return p.lineNumber.Sprint(s)
}

// Filename colours a source name.
func (p *Palette) Filename(s string) string {
	if p == nil {
		return s
	}
	return p.filename.Sprint(s)
}
