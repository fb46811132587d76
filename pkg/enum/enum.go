// Package enum opens named text sources in order and hands them to a callback.
package enum

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/praetorian-inc/sift/pkg/types"
)

// StdinName is the source name reported for standard input.
const StdinName = "(standard input)"

// errIsDirectory is wrapped in a SourceOpenError for directory arguments.
var errIsDirectory = errors.New("is a directory")

// Enumerator yields text sources one at a time.
type Enumerator interface {
	// Enumerate calls callback for each source, in order. The reader is
	// only valid for the duration of the call. An error returned by the
	// callback stops enumeration and is returned.
	Enumerate(callback func(name string, r io.Reader) error) error
}

// Config for enumeration.
type Config struct {
	// Names are the sources in command-line order. "-" is standard input.
	// No names means standard input alone.
	Names []string

	// Stdin replaces os.Stdin when set.
	Stdin io.Reader

	// OnOpenError is told about each source that cannot be opened. The
	// source is skipped either way.
	OnOpenError func(*types.SourceOpenError)
}

// FileEnumerator opens files from the local filesystem.
type FileEnumerator struct {
	config Config
}

// NewFileEnumerator creates a new file enumerator.
func NewFileEnumerator(config Config) *FileEnumerator {
	return &FileEnumerator{config: config}
}

// Enumerate implements Enumerator.
func (e *FileEnumerator) Enumerate(callback func(name string, r io.Reader) error) error {
	names := e.config.Names
	if len(names) == 0 {
		names = []string{"-"}
	}

	for _, name := range names {
		if name == "-" {
			if err := callback(StdinName, e.stdin()); err != nil {
				return err
			}
			continue
		}

		if err := e.processFile(name, callback); err != nil {
			var openErr *types.SourceOpenError
			if errors.As(err, &openErr) {
				e.reportOpenError(openErr)
				continue
			}
			return err
		}
	}
	return nil
}

// processFile opens a single file, invokes the callback, and closes the
// file whatever the callback returns.
func (e *FileEnumerator) processFile(name string, callback func(name string, r io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return &types.SourceOpenError{Name: name, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &types.SourceOpenError{Name: name, Err: err}
	}
	if info.IsDir() {
		return &types.SourceOpenError{Name: name, Err: errIsDirectory}
	}

	if err := callback(name, f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (e *FileEnumerator) stdin() io.Reader {
	if e.config.Stdin != nil {
		return e.config.Stdin
	}
	return os.Stdin
}

func (e *FileEnumerator) reportOpenError(err *types.SourceOpenError) {
	if e.config.OnOpenError != nil {
		e.config.OnOpenError(err)
	}
}
