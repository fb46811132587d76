// Package sift provides line-oriented text filtering as a library.
//
// sift selects lines (or whitespace-delimited words) that satisfy a
// pattern and renders them the way grep and cat do.
//
// # Basic Usage
//
//	f, err := sift.NewFilter("b.r", sift.WithMode(sift.ModeWholeLine))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := f.ScanString("bar\nbaz\nqux\n", "input")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Output)           // bar
//	fmt.Println(res.Outcome.MatchCount) // 1
//
// # Copying Lines
//
// A filter built with NewCopier emits every line, optionally numbered:
//
//	c := sift.NewCopier(sift.WithDisplay(sift.DisplayConfig{ShowLineNumbers: true}))
//	res, _ := c.ScanString("foo\nbar\n", "-")
package sift

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/praetorian-inc/sift/pkg/matcher"
	"github.com/praetorian-inc/sift/pkg/scanner"
	"github.com/praetorian-inc/sift/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// MatchMode selects substring, whole-line, or whole-word matching.
	MatchMode = types.MatchMode

	// DisplayConfig holds display and counting switches.
	DisplayConfig = types.DisplayConfig

	// ScanOutcome is the per-source result.
	ScanOutcome = types.ScanOutcome

	// Result carries a source's outcome and rendered output.
	Result = scanner.ScanResult

	// ContentItem is one named in-memory source for ScanBatch.
	ContentItem = scanner.ContentItem

	// BatchResult aggregates a ScanBatch run.
	BatchResult = scanner.BatchScanResult

	// Engine selects the pattern grammar.
	Engine = matcher.Engine
)

// Re-export mode and engine constants.
const (
	ModeLineSubstring = types.ModeLineSubstring
	ModeWholeLine     = types.ModeWholeLine
	ModeWholeWord     = types.ModeWholeWord

	EnginePOSIX = matcher.EnginePOSIX
	EnginePerl  = matcher.EnginePerl
	EngineFixed = matcher.EngineFixed
)

// Filter scans text sources with a fixed configuration.
type Filter struct {
	core *scanner.Core
}

// filterConfig holds filter configuration.
type filterConfig struct {
	mode       types.MatchMode
	engine     matcher.Engine
	ignoreCase bool
	display    types.DisplayConfig
	logger     types.DebugLogger
}

// Option configures a Filter.
type Option func(*filterConfig)

// WithMode sets the match mode. Default is ModeLineSubstring.
func WithMode(mode MatchMode) Option {
	return func(c *filterConfig) {
		c.mode = mode
	}
}

// WithEngine sets the pattern engine. Default is EnginePOSIX.
func WithEngine(engine Engine) Option {
	return func(c *filterConfig) {
		c.engine = engine
	}
}

// WithIgnoreCase enables case-insensitive matching.
func WithIgnoreCase() Option {
	return func(c *filterConfig) {
		c.ignoreCase = true
	}
}

// WithInvert selects lines or words that do not match.
func WithInvert() Option {
	return func(c *filterConfig) {
		c.display.InvertMatch = true
	}
}

// WithDisplay replaces the display configuration. Apply it before
// WithInvert when both are used.
func WithDisplay(cfg DisplayConfig) Option {
	return func(c *filterConfig) {
		c.display = cfg
	}
}

// WithLogger routes diagnostic messages to logger.
func WithLogger(logger types.DebugLogger) Option {
	return func(c *filterConfig) {
		c.logger = logger
	}
}

func buildConfig(opts []Option) *filterConfig {
	config := &filterConfig{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// NewFilter compiles pattern and returns a grep-style filter.
// Line numbers, when enabled, use the N: style.
func NewFilter(pattern string, opts ...Option) (*Filter, error) {
	config := buildConfig(opts)

	m, err := matcher.New(matcher.Config{
		Pattern:    pattern,
		IgnoreCase: config.ignoreCase,
		WholeLine:  config.mode == types.ModeWholeLine,
		Engine:     config.engine,
		Logger:     config.logger,
	})
	if err != nil {
		return nil, err
	}

	display := config.display
	display.NumberStyle = types.NumberStyleGrep
	coreOpts := scanner.Options{
		Matcher: m,
		Mode:    config.mode,
		Display: display,
	}
	return &Filter{core: scanner.NewCore(coreOpts, config.logger)}, nil
}

// NewCopier returns a cat-style filter that emits every line.
// Mode, engine, and case options are ignored.
func NewCopier(opts ...Option) *Filter {
	config := buildConfig(opts)
	display := config.display
	display.NumberStyle = types.NumberStyleCat
	return &Filter{core: scanner.NewCore(scanner.Options{Display: display}, config.logger)}
}

// ScanReader scans r as the source called name, writing output to w.
func (f *Filter) ScanReader(r io.Reader, name string, w io.Writer) (ScanOutcome, error) {
	return f.core.ScanReader(r, name, w)
}

// ScanString scans content and returns the outcome and rendered output.
func (f *Filter) ScanString(content, name string) (*Result, error) {
	return f.core.Scan(content, name)
}

// ScanBatch scans items in order. Items whose scan fails are left out of
// the results; ExitStatus is 0 iff any scanned item matched.
func (f *Filter) ScanBatch(items []ContentItem) (*BatchResult, error) {
	return f.core.ScanBatch(items)
}

// ScanFile opens and scans the file at path.
func (f *Filter) ScanFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &types.SourceOpenError{Name: path, Err: err}
	}
	defer file.Close()

	var out strings.Builder
	outcome, err := f.ScanReader(file, path, &out)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return &Result{Outcome: outcome, Output: out.String()}, nil
}
