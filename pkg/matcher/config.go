package matcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/praetorian-inc/sift/pkg/types"
)

// Engine selects the pattern grammar.
type Engine int

const (
	EnginePOSIX Engine = iota // POSIX extended regular expressions
	EnginePerl                // Perl-compatible expressions (regexp2)
	EngineFixed               // newline-separated literal strings
)

func (e Engine) String() string {
	switch e {
	case EnginePOSIX:
		return "posix"
	case EnginePerl:
		return "perl"
	case EngineFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Engine(%d)", int(e))
	}
}

// ParseEngine maps an engine name to an Engine. The empty string is POSIX.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "posix", "extended", "ere":
		return EnginePOSIX, nil
	case "perl", "pcre", "regexp2":
		return EnginePerl, nil
	case "fixed", "literal":
		return EngineFixed, nil
	default:
		return EnginePOSIX, fmt.Errorf("unknown engine %q", name)
	}
}

// DefaultTimeout bounds a single Perl-engine evaluation.
const DefaultTimeout = 5 * time.Second

// Config for matcher construction.
type Config struct {
	// Pattern is the raw pattern as given on the command line.
	Pattern string

	// IgnoreCase folds case when matching.
	IgnoreCase bool

	// WholeLine requires the pattern to span the entire tested text.
	WholeLine bool

	Engine Engine

	// Timeout applies to the Perl engine only (0 = DefaultTimeout).
	Timeout time.Duration

	// Logger receives warnings about evaluations that were abandoned.
	Logger types.DebugLogger
}

func (c Config) logger() types.DebugLogger {
	if c.Logger == nil {
		return types.NoopLogger{}
	}
	return c.Logger
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
