package types

import "fmt"

// MatchMode selects how a line is tested against the pattern.
type MatchMode int

const (
	// ModeLineSubstring matches when the pattern occurs anywhere in the line.
	ModeLineSubstring MatchMode = iota
	// ModeWholeLine matches when the entire line (terminator excluded) satisfies the pattern.
	ModeWholeLine
	// ModeWholeWord tests each whitespace-delimited token independently.
	ModeWholeWord
)

// String returns the mode name used in debug output.
func (m MatchMode) String() string {
	switch m {
	case ModeLineSubstring:
		return "substring"
	case ModeWholeLine:
		return "line"
	case ModeWholeWord:
		return "word"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ResolveMode maps the -x and -w flags to a single mode.
// Both set at once is a usage error.
func ResolveMode(wholeLine, wholeWord bool) (MatchMode, error) {
	switch {
	case wholeLine && wholeWord:
		return ModeLineSubstring, &UsageError{Msg: "-x and -w are mutually exclusive"}
	case wholeLine:
		return ModeWholeLine, nil
	case wholeWord:
		return ModeWholeWord, nil
	default:
		return ModeLineSubstring, nil
	}
}
