// Package matcher compiles a pattern into a boolean text test.
//
// Three engines are available: POSIX extended regular expressions (the
// default), Perl-compatible expressions backed by regexp2, and fixed
// strings searched with Aho-Corasick.
package matcher

import "github.com/praetorian-inc/sift/pkg/types"

// Matcher tests text against a compiled pattern.
type Matcher interface {
	// Test reports whether text satisfies the pattern.
	Test(text string) bool

	// Pattern returns the raw pattern string the matcher was built from.
	Pattern() string
}

// WordMatcher is implemented by matchers that decide whole-word matches
// themselves instead of relying on the token length heuristic.
type WordMatcher interface {
	// TestWord reports whether token, a whitespace-delimited word, matches.
	TestWord(token string) bool
}

// New compiles cfg.Pattern with the selected engine.
// A pattern that does not compile yields a *types.PatternError.
func New(cfg Config) (Matcher, error) {
	var (
		m   Matcher
		err error
	)
	switch cfg.Engine {
	case EnginePerl:
		m, err = NewPortableRegexp(cfg)
	case EngineFixed:
		m, err = NewFixed(cfg), nil
	default:
		m, err = NewPOSIX(cfg)
	}
	if err != nil {
		return nil, &types.PatternError{Pattern: cfg.Pattern, Err: err}
	}
	return m, nil
}
