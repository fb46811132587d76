package main

import (
	"fmt"
	"runtime"

	"github.com/praetorian-inc/sift/pkg/matcher"
	"github.com/spf13/cobra"
)

// Set at build time with
// -ldflags "-X main.version=1.2.0 -X main.commit=$(git rev-parse --short HEAD)".
var (
	version = "dev"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Print the sift release and commit stamped in at build time, the Go
toolchain it was built with, and the default pattern engine.`,
	RunE: runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sift v%s\n", version)
	fmt.Fprintf(out, "Commit: %s\n", commit)
	fmt.Fprintf(out, "Default engine: %s\n", matcher.EnginePOSIX)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
