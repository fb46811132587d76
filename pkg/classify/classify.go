// Package classify decides, per line, which parts of it match.
package classify

import (
	"strings"

	"github.com/praetorian-inc/sift/pkg/matcher"
	"github.com/praetorian-inc/sift/pkg/types"
)

// Classify tests line against m under mode and returns the results in
// order: one result for the line modes, one per token in whole-word mode.
//
// For ModeWholeLine, m is expected to have been built with WholeLine set so
// that it anchors at both ends.
//
// mode must be ModeLineSubstring, ModeWholeLine or ModeWholeWord.
func Classify(line types.Line, m matcher.Matcher, mode types.MatchMode, invert bool) []types.MatchResult {
	content := line.Content()

	if mode != types.ModeWholeWord {
		ok := m.Test(content) != invert
		return []types.MatchResult{result(ok, content)}
	}

	test := wordTest(m)
	tokens := Tokenize(content)
	results := make([]types.MatchResult, 0, len(tokens))
	for _, tok := range tokens {
		ok := test(tok) != invert
		results = append(results, result(ok, tok))
	}
	return results
}

// wordTest returns the whole-word predicate for m. Unless m decides words
// itself, a token matches only when it is as long as the raw pattern. This
// is a length heuristic, not a word-boundary test: "c.t" accepts any
// three-character token the expression matches.
func wordTest(m matcher.Matcher) func(string) bool {
	if wm, ok := m.(matcher.WordMatcher); ok {
		return wm.TestWord
	}
	patternLen := len(m.Pattern())
	return func(tok string) bool {
		return len(tok) == patternLen && m.Test(tok)
	}
}

func result(matched bool, span string) types.MatchResult {
	if !matched {
		return types.MatchResult{}
	}
	return types.MatchResult{Matched: true, Span: span}
}

// Tokenize splits s on runs of ASCII spaces and tabs, discarding empty tokens.
// Other punctuation stays inside tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
}
