package main

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/sift/pkg/enum"
	"github.com/praetorian-inc/sift/pkg/scanner"
	"github.com/praetorian-inc/sift/pkg/types"
	"github.com/spf13/cobra"
)

// scanSources runs one session per source, in order. Unopenable sources
// are reported and skipped; read errors end that source with a warning.
func scanSources(cmd *cobra.Command, names []string, opts scanner.Options) ([]types.ScanOutcome, error) {
	out := cmd.OutOrStdout()
	var outcomes []types.ScanOutcome

	enumerator := enum.NewFileEnumerator(enum.Config{
		Names:       names,
		Stdin:       cmd.InOrStdin(),
		OnOpenError: warnOpenError(cmd),
	})
	err := enumerator.Enumerate(func(name string, r io.Reader) error {
		outcome, err := scanner.NewSession(name, out, opts).Run(r)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		outcomes = append(outcomes, outcome)
		return nil
	})
	if err != nil {
		return outcomes, fmt.Errorf("scanning: %w", err)
	}
	return outcomes, nil
}
