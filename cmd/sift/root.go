package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/praetorian-inc/sift/pkg/config"
	"github.com/praetorian-inc/sift/pkg/types"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "sift - line-oriented text filtering",
	Long: `sift scans text line by line.

  sift grep selects lines or words that match a pattern.
  sift cat copies lines with optional numbering and markers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $SIFT_CONFIG or ~/.config/sift/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write diagnostic messages to stderr")

	rootCmd.SetFlagErrorFunc(flagUsageError)

	// Add subcommands
	rootCmd.AddCommand(grepCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitError carries a process exit status without a message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitCode reports err on w unless it is a bare exit status, and returns
// the status the process should exit with.
func exitCode(err error, w io.Writer) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(w, "sift: %v\n", err)
	return 1
}

// flagUsageError turns a flag parse error into a UsageError, naming
// unknown options the way grep and cat do.
func flagUsageError(cmd *cobra.Command, err error) error {
	const (
		unknownShorthand = "unknown shorthand flag: '"
		unknownFlag      = "unknown flag: "
	)
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, unknownShorthand):
		name, _, _ := strings.Cut(strings.TrimPrefix(msg, unknownShorthand), "'")
		msg = fmt.Sprintf("Unknown option `-%s'.", name)
	case strings.HasPrefix(msg, unknownFlag):
		msg = fmt.Sprintf("Unknown option `%s'.", strings.TrimPrefix(msg, unknownFlag))
	}
	return &types.UsageError{Msg: msg}
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is empty.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadConfig(path)
}

// debugLogger returns a stderr logger when debugging is on.
func debugLogger(cmd *cobra.Command, cfg *config.Config) types.DebugLogger {
	if debug || cfg.Debug {
		return types.WriterLogger{W: cmd.ErrOrStderr(), Prefix: "[debug] "}
	}
	return types.NoopLogger{}
}

// warnOpenError is the OnOpenError hook shared by grep and cat.
func warnOpenError(cmd *cobra.Command) func(*types.SourceOpenError) {
	return func(err *types.SourceOpenError) {
		fmt.Fprintf(cmd.ErrOrStderr(), "sift: %v\n", err)
	}
}
