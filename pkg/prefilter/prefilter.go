// Package prefilter provides literal keyword search over text.
package prefilter

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
type Prefilter struct {
	matcher    *ahocorasick.Matcher
	keywords   []string            // keyword at each index
	exact      map[string]struct{} // keyword set for whole-text comparison
	foldCase   bool
	matchEmpty bool // an empty keyword occurs in every text
}

// New creates a prefilter from keywords. Duplicates are collapsed.
// With foldCase, keywords and searched text are compared in lower case.
func New(keywords []string, foldCase bool) *Prefilter {
	pf := &Prefilter{
		exact:    make(map[string]struct{}),
		foldCase: foldCase,
	}

	for _, kw := range keywords {
		if foldCase {
			kw = strings.ToLower(kw)
		}
		if _, seen := pf.exact[kw]; seen {
			continue
		}
		pf.exact[kw] = struct{}{}
		if kw == "" {
			pf.matchEmpty = true
			continue
		}
		pf.keywords = append(pf.keywords, kw)
	}

	// Build Aho-Corasick matcher if we have keywords
	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Keywords returns the distinct non-empty keywords in insertion order.
func (pf *Prefilter) Keywords() []string {
	return pf.keywords
}

// Contains reports whether any keyword occurs in text.
func (pf *Prefilter) Contains(text string) bool {
	if pf.matchEmpty {
		return true
	}
	if pf.matcher == nil {
		return false
	}
	return len(pf.matcher.Match([]byte(pf.fold(text)))) > 0
}

// Equals reports whether text is exactly one of the keywords.
func (pf *Prefilter) Equals(text string) bool {
	_, ok := pf.exact[pf.fold(text)]
	return ok
}

func (pf *Prefilter) fold(text string) string {
	if pf.foldCase {
		return strings.ToLower(text)
	}
	return text
}
