package types

// NumberStyle controls how a line-number prefix is rendered.
type NumberStyle int

const (
	// NumberStyleCat right-justifies the number in a six-column field followed by two spaces.
	NumberStyleCat NumberStyle = iota
	// NumberStyleGrep prints the number followed by a colon.
	NumberStyleGrep
)

// DisplayConfig holds the display and counting switches for one session.
// It is built once from parsed flags and passed by value.
type DisplayConfig struct {
	ShowLineNumbers    bool // -n
	NumberNonEmptyOnly bool // -b
	ShowEndMarker      bool // -E, -T
	SqueezeBlankRuns   bool // -s
	EscapeTabs         bool // -t, -T
	InvertMatch        bool // -v
	SilentCount        bool // -c
	FilenameOnly       bool // -l, -L
	ListNonMatching    bool // -L

	NumberStyle NumberStyle
}

// Numbered reports whether a line should carry a number prefix.
func (c DisplayConfig) Numbered(blank bool) bool {
	return c.ShowLineNumbers || (c.NumberNonEmptyOnly && !blank)
}

// EmitsLines reports whether per-line output is produced at all.
func (c DisplayConfig) EmitsLines() bool {
	return !c.FilenameOnly && !c.SilentCount
}
