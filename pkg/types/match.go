package types

// MatchResult is the outcome of testing a line or a token.
type MatchResult struct {
	Matched bool
	// Span is the text that matched: the whole line content in line modes,
	// the token in whole-word mode. Empty when Matched is false.
	Span string
}

// CountMatched returns how many results are positive.
func CountMatched(results []MatchResult) int {
	n := 0
	for _, r := range results {
		if r.Matched {
			n++
		}
	}
	return n
}

// ScanOutcome is the per-source result of a scan.
// The session that produced it is its only writer.
type ScanOutcome struct {
	SourceName string `json:"source"`
	MatchCount int    `json:"match_count"`
}

// Matched reports whether the source had at least one positive result.
func (o ScanOutcome) Matched() bool {
	return o.MatchCount > 0
}

// ExitStatus folds outcomes into a grep-style exit code:
// 0 if any source matched, 1 otherwise.
func ExitStatus(outcomes []ScanOutcome) int {
	for _, o := range outcomes {
		if o.Matched() {
			return 0
		}
	}
	return 1
}
