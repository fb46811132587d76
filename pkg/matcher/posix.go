package matcher

import (
	"regexp"
	"regexp/syntax"
)

// POSIXMatcher implements Matcher for POSIX extended regular expressions
// with leftmost-longest semantics.
type POSIXMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewPOSIX validates cfg.Pattern against the POSIX grammar and compiles it.
func NewPOSIX(cfg Config) (*POSIXMatcher, error) {
	flags := syntax.POSIX
	if cfg.IgnoreCase {
		flags |= syntax.FoldCase
	}
	// Parse in POSIX mode first so that Perl-only syntax such as \d or (?:
	// is rejected. The parsed tree is then printed back in a form the
	// standard compiler accepts, preserving the fold-case flag.
	tree, err := syntax.Parse(cfg.Pattern, flags)
	if err != nil {
		return nil, err
	}

	expr := tree.String()
	if cfg.WholeLine {
		expr = `\A(?:` + expr + `)\z`
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	re.Longest()

	return &POSIXMatcher{pattern: cfg.Pattern, re: re}, nil
}

// Test reports whether text satisfies the pattern.
func (m *POSIXMatcher) Test(text string) bool {
	return m.re.MatchString(text)
}

// Pattern returns the raw pattern.
func (m *POSIXMatcher) Pattern() string {
	return m.pattern
}
