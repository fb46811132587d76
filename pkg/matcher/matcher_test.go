package matcher

import (
	"errors"
	"testing"

	"github.com/praetorian-inc/sift/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_POSIX(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"literal substring", "bar", "foobarbaz", true},
		{"dot", "b.r", "bar", true},
		{"dot no match", "b.r", "baz", false},
		{"alternation", "cat|dog", "hotdog", true},
		{"grouping and plus", "(ab)+c", "xxababc", true},
		{"optional", "colou?r", "color", true},
		{"interval", "a{2,3}", "caab", true},
		{"interval no match", "^a{2,3}$", "aaaa", false},
		{"bracket class", "[0-9]+", "abc123", true},
		{"named class", "^[[:digit:]]+$", "2024", true},
		{"anchors", "^foo$", "foo", true},
		{"anchors reject", "^foo$", "foo bar", false},
		{"empty pattern matches everything", "", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(Config{Pattern: tt.pattern})
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Test(tt.text))
			assert.Equal(t, tt.pattern, m.Pattern())
		})
	}
}

func TestNew_POSIXRejectsInvalid(t *testing.T) {
	patterns := []string{
		"(",
		"a)",
		"[abc",
		"*a",
		`\d+`,
		"(?i)abc",
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			_, err := New(Config{Pattern: p})
			require.Error(t, err)

			var perr *types.PatternError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, p, perr.Pattern)
			assert.Contains(t, perr.Error(), "regex compilation failed")
		})
	}
}

func TestNew_IgnoreCase(t *testing.T) {
	for _, engine := range []Engine{EnginePOSIX, EnginePerl, EngineFixed} {
		t.Run(engine.String(), func(t *testing.T) {
			m, err := New(Config{Pattern: "hello", IgnoreCase: true, Engine: engine})
			require.NoError(t, err)
			assert.True(t, m.Test("Say HELLO there"))

			m, err = New(Config{Pattern: "hello", Engine: engine})
			require.NoError(t, err)
			assert.False(t, m.Test("Say HELLO there"))
		})
	}
}

func TestNew_WholeLine(t *testing.T) {
	for _, engine := range []Engine{EnginePOSIX, EnginePerl, EngineFixed} {
		t.Run(engine.String(), func(t *testing.T) {
			m, err := New(Config{Pattern: "bar", WholeLine: true, Engine: engine})
			require.NoError(t, err)
			assert.True(t, m.Test("bar"))
			assert.False(t, m.Test("bar "))
			assert.False(t, m.Test("foobar"))
		})
	}
}

func TestNew_WholeLineAlternation(t *testing.T) {
	// Anchoring must apply to the whole alternation, not its first branch.
	m, err := New(Config{Pattern: "foo|bar", WholeLine: true})
	require.NoError(t, err)
	assert.True(t, m.Test("bar"))
	assert.False(t, m.Test("barn"))
	assert.False(t, m.Test("xfoo"))
}

func TestNew_WholeLineEmptyPattern(t *testing.T) {
	m, err := New(Config{Pattern: "", WholeLine: true})
	require.NoError(t, err)
	assert.True(t, m.Test(""))
	assert.False(t, m.Test("x"))
}

func TestNew_Perl(t *testing.T) {
	m, err := New(Config{Pattern: `\d{3}(?=px)`, Engine: EnginePerl})
	require.NoError(t, err)
	assert.True(t, m.Test("width: 100px"))
	assert.False(t, m.Test("width: 100em"))

	_, err = New(Config{Pattern: `(unclosed`, Engine: EnginePerl})
	var perr *types.PatternError
	assert.True(t, errors.As(err, &perr))
}

func TestNew_PerlWrapCannotRepairPattern(t *testing.T) {
	_, err := New(Config{Pattern: "a)|(b", Engine: EnginePerl, WholeLine: true})
	assert.Error(t, err)
}

func TestNew_Fixed(t *testing.T) {
	m, err := New(Config{Pattern: "a.b\nc*d", Engine: EngineFixed})
	require.NoError(t, err)
	assert.True(t, m.Test("x a.b y"))
	assert.True(t, m.Test("c*d"))
	assert.False(t, m.Test("axb"), "metacharacters are literal")
}

func TestFixed_TestWord(t *testing.T) {
	logger := &recordingLogger{}
	m := NewFixed(Config{Pattern: "Cat\ndog", IgnoreCase: true, Logger: logger})

	assert.True(t, m.TestWord("cat"))
	assert.True(t, m.TestWord("DOG"))
	assert.False(t, m.TestWord("cats"))
	assert.False(t, m.TestWord("dogcat"))
	assert.NotEmpty(t, logger.messages)

	var _ WordMatcher = m
}

func TestParseEngine(t *testing.T) {
	tests := map[string]Engine{
		"":        EnginePOSIX,
		"posix":   EnginePOSIX,
		"ERE":     EnginePOSIX,
		"perl":    EnginePerl,
		"pcre":    EnginePerl,
		"fixed":   EngineFixed,
		" fixed ": EngineFixed,
	}
	for name, want := range tests {
		got, err := ParseEngine(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseEngine("glob")
	assert.Error(t, err)
}

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Log(format string, args ...interface{}) {
	r.messages = append(r.messages, format)
}

func TestPortableRegexp_TimeoutIsNoMatch(t *testing.T) {
	logger := &recordingLogger{}
	m, err := NewPortableRegexp(Config{
		Pattern: `^(a+)+$`,
		Timeout: 1,
		Logger:  logger,
	})
	require.NoError(t, err)

	text := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa!"
	assert.False(t, m.Test(text))
}
