package matcher

import (
	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/sift/pkg/types"
)

// PortableRegexpMatcher implements Matcher using regexp2 for Perl-style
// expressions (lookaround, backreferences, lazy quantifiers).
//
// A timeout or runtime error during evaluation is logged and treated as
// no match.
type PortableRegexpMatcher struct {
	pattern string
	re      *regexp2.Regexp
	logger  types.DebugLogger
}

// NewPortableRegexp compiles cfg.Pattern with regexp2.
func NewPortableRegexp(cfg Config) (*PortableRegexpMatcher, error) {
	opts := regexp2.None
	if cfg.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}

	// Compile the bare pattern first so that wrapping it cannot turn an
	// unbalanced pattern into a valid one.
	re, err := regexp2.Compile(cfg.Pattern, opts)
	if err != nil {
		return nil, err
	}
	if cfg.WholeLine {
		re, err = regexp2.Compile(`\A(?:`+cfg.Pattern+`)\z`, opts)
		if err != nil {
			return nil, err
		}
	}
	// Set timeout to prevent catastrophic backtracking
	re.MatchTimeout = cfg.timeout()

	return &PortableRegexpMatcher{
		pattern: cfg.Pattern,
		re:      re,
		logger:  cfg.logger(),
	}, nil
}

// Test reports whether text satisfies the pattern.
func (m *PortableRegexpMatcher) Test(text string) bool {
	ok, err := m.re.MatchString(text)
	if err != nil {
		m.logger.Log("[warn] pattern %q evaluation abandoned (treating as no match): %v", m.pattern, err)
		return false
	}
	return ok
}

// Pattern returns the raw pattern.
func (m *PortableRegexpMatcher) Pattern() string {
	return m.pattern
}
