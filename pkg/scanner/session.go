package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/praetorian-inc/sift/pkg/classify"
	"github.com/praetorian-inc/sift/pkg/format"
	"github.com/praetorian-inc/sift/pkg/types"
)

// Session drives one source through classification and formatting.
// A Session is single-use: Run may be called once.
type Session struct {
	opts     Options
	out      io.Writer
	state    State
	outcome  types.ScanOutcome
	numberer *format.Numberer
}

// NewSession creates a session for the source called name, writing output to out.
func NewSession(name string, out io.Writer, opts Options) *Session {
	return &Session{
		opts:     opts,
		out:      out,
		state:    StateOpen,
		outcome:  types.ScanOutcome{SourceName: name},
		numberer: format.NewNumberer(opts.Display.SqueezeBlankRuns),
	}
}

// State returns the session's lifecycle position.
func (s *Session) State() State {
	return s.state
}

// Outcome returns the outcome accumulated so far. It is final once the
// session is closed.
func (s *Session) Outcome() types.ScanOutcome {
	return s.outcome
}

// Run reads r to exhaustion, emitting per-line output and the end-of-source
// summary. A read error ends the scan early; the summary is still written
// and the error is returned alongside the partial outcome.
func (s *Session) Run(r io.Reader) (types.ScanOutcome, error) {
	if s.state != StateOpen {
		return s.outcome, fmt.Errorf("session for %s already %s", s.outcome.SourceName, s.state)
	}
	s.state = StateScanning
	log := s.opts.logger()
	log.Log("scanning %s (mode=%s passthrough=%t)", s.outcome.SourceName, s.opts.Mode, s.opts.passthrough())

	var readErr error
	br := bufio.NewReader(r)
	n := 0
	for {
		text, err := br.ReadString('\n')
		if text != "" {
			n++
			s.handle(types.NewLine(text, n))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = fmt.Errorf("reading %s: %w", s.outcome.SourceName, err)
			}
			break
		}
	}

	s.state = StateClosed
	s.summarize()
	log.Log("closed %s: %d lines, %d matches", s.outcome.SourceName, n, s.outcome.MatchCount)
	return s.outcome, readErr
}

func (s *Session) handle(line types.Line) {
	cfg := s.opts.Display
	number := s.numberer.Next(line.IsBlank())

	if s.opts.passthrough() {
		s.outcome.MatchCount++
		if cfg.EmitsLines() {
			s.writeLine(line, number)
		}
		return
	}

	results := classify.Classify(line, s.opts.Matcher, s.opts.Mode, cfg.InvertMatch)
	matched := types.CountMatched(results)
	s.outcome.MatchCount += matched

	if !cfg.EmitsLines() || matched == 0 {
		return
	}
	if s.opts.Mode == types.ModeWholeWord {
		s.writeTokens(results, number)
		return
	}
	s.writeLine(line, number)
	if !line.HasTerminator() && !cfg.ShowEndMarker {
		fmt.Fprint(s.out, "\n")
	}
}

func (s *Session) writeLine(line types.Line, number int) {
	fmt.Fprint(s.out, format.Render(line, number, s.opts.Display, s.opts.Palette))
}

func (s *Session) writeTokens(results []types.MatchResult, number int) {
	cfg := s.opts.Display
	var b strings.Builder
	for _, r := range results {
		if !r.Matched {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if cfg.ShowLineNumbers {
			b.WriteString(s.opts.Palette.LineNumber(format.Prefix(number, cfg.NumberStyle)))
		}
		b.WriteString(s.opts.Palette.Match(r.Span))
	}
	b.WriteByte('\n')
	fmt.Fprint(s.out, b.String())
}

func (s *Session) summarize() {
	cfg := s.opts.Display
	switch {
	case cfg.FilenameOnly:
		listed := s.outcome.Matched()
		if cfg.ListNonMatching {
			listed = !listed
		}
		if listed {
			fmt.Fprintln(s.out, s.opts.Palette.Filename(s.outcome.SourceName))
		}
	case cfg.SilentCount:
		fmt.Fprintln(s.out, s.outcome.MatchCount)
	}
}
