package scanner

import (
	"io"
	"strings"

	"github.com/praetorian-inc/sift/pkg/types"
)

// Core scans in-memory content with a fixed set of options.
type Core struct {
	opts   Options
	logger types.DebugLogger
}

// NewCore creates a Core. A nil logger discards diagnostics.
func NewCore(opts Options, logger types.DebugLogger) *Core {
	if logger == nil {
		logger = types.NoopLogger{}
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	return &Core{opts: opts, logger: logger}
}

// ScanReader runs a fresh session over r, writing output to w.
func (c *Core) ScanReader(r io.Reader, source string, w io.Writer) (types.ScanOutcome, error) {
	return NewSession(source, w, c.opts).Run(r)
}

// Scan scans a single content string
func (c *Core) Scan(content, source string) (*ScanResult, error) {
	var out strings.Builder
	outcome, err := c.ScanReader(strings.NewReader(content), source, &out)
	if err != nil {
		return nil, err
	}
	return &ScanResult{Outcome: outcome, Output: out.String()}, nil
}

// ScanBatch scans multiple content items in order
func (c *Core) ScanBatch(items []ContentItem) (*BatchScanResult, error) {
	results := make([]ScanResult, 0, len(items))
	outcomes := make([]types.ScanOutcome, 0, len(items))
	total := 0

	for _, item := range items {
		res, err := c.Scan(item.Content, item.Source)
		if err != nil {
			c.logger.Log("skipping %s: %v", item.Source, err)
			continue
		}
		results = append(results, *res)
		outcomes = append(outcomes, res.Outcome)
		total += res.Outcome.MatchCount
	}

	return &BatchScanResult{
		Results:    results,
		Total:      total,
		ExitStatus: types.ExitStatus(outcomes),
	}, nil
}
