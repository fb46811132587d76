package types

import "fmt"

// UsageError reports a bad or missing flag or argument.
// It is fatal and raised before any source is scanned.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("regex compilation failed: %v", e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// SourceOpenError reports a source that could not be opened.
// The source is skipped and scanning continues.
type SourceOpenError struct {
	Name string
	Err  error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("could not open file: %s", e.Name)
}

func (e *SourceOpenError) Unwrap() error {
	return e.Err
}
