package matcher

import (
	"strings"

	"github.com/praetorian-inc/sift/pkg/prefilter"
)

// FixedMatcher implements Matcher for a newline-separated list of literal
// strings. Text matches if any of the strings occurs in it, or, in
// whole-line mode, if it equals one of them.
type FixedMatcher struct {
	pattern   string
	pf        *prefilter.Prefilter
	wholeLine bool
}

// NewFixed builds a fixed-string matcher. It never fails.
func NewFixed(cfg Config) *FixedMatcher {
	pf := prefilter.New(strings.Split(cfg.Pattern, "\n"), cfg.IgnoreCase)
	cfg.logger().Log("fixed-string matcher with keywords %q", pf.Keywords())
	return &FixedMatcher{
		pattern:   cfg.Pattern,
		pf:        pf,
		wholeLine: cfg.WholeLine,
	}
}

// Test reports whether text satisfies the pattern.
func (m *FixedMatcher) Test(text string) bool {
	if m.wholeLine {
		return m.pf.Equals(text)
	}
	return m.pf.Contains(text)
}

// TestWord reports whether token is one of the keywords. A token as long
// as a keyword contains it only by being equal to it, so each keyword
// carries its own length.
func (m *FixedMatcher) TestWord(token string) bool {
	return m.pf.Equals(token)
}

// Pattern returns the raw pattern.
func (m *FixedMatcher) Pattern() string {
	return m.pattern
}
