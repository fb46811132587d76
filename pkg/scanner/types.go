package scanner

import (
	"fmt"

	"github.com/praetorian-inc/sift/pkg/format"
	"github.com/praetorian-inc/sift/pkg/matcher"
	"github.com/praetorian-inc/sift/pkg/types"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateOpen     State = iota // source readable, nothing read yet
	StateScanning              // lines being read and classified
	StateClosed                // source exhausted; outcome final
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateScanning:
		return "scanning"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures how a Session treats each line.
type Options struct {
	// Matcher selects lines. Nil means passthrough: every line is emitted
	// through the formatter and counted, as cat does.
	Matcher matcher.Matcher

	Mode    types.MatchMode
	Display types.DisplayConfig

	// Palette colours output; nil disables colour.
	Palette *format.Palette

	Logger types.DebugLogger
}

func (o Options) passthrough() bool {
	return o.Matcher == nil
}

func (o Options) logger() types.DebugLogger {
	if o.Logger == nil {
		return types.NoopLogger{}
	}
	return o.Logger
}

// ContentItem represents a content item to scan
type ContentItem struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// ScanResult represents scan results for a single item
type ScanResult struct {
	Outcome types.ScanOutcome `json:"outcome"`
	Output  string            `json:"output"`
}

// BatchScanResult represents batch scan results
type BatchScanResult struct {
	Results    []ScanResult `json:"results"`
	Total      int          `json:"total"`
	ExitStatus int          `json:"exit_status"`
}
