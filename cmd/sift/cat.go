package main

import (
	"github.com/praetorian-inc/sift/pkg/scanner"
	"github.com/praetorian-inc/sift/pkg/types"
	"github.com/spf13/cobra"
)

var (
	catNumberNonBlank bool
	catShowEnds       bool
	catNumber         bool
	catSqueezeBlank   bool
	catShowTabs       bool
	catShowTabsEnds   bool
)

var catCmd = &cobra.Command{
	Use:   "cat [flags] [FILE...]",
	Short: "Copy lines to standard output",
	Long: `Concatenate FILEs to standard output, optionally numbering lines and
marking tabs and line ends. With no FILE, or when FILE is -, read standard input.`,
	RunE: runCat,
}

func init() {
	catCmd.Flags().BoolVarP(&catNumberNonBlank, "number-nonblank", "b", false, "Number non-empty output lines")
	catCmd.Flags().BoolVarP(&catShowEnds, "show-ends", "E", false, "Display $ at end of each line")
	catCmd.Flags().BoolVarP(&catNumber, "number", "n", false, "Number all output lines")
	catCmd.Flags().BoolVarP(&catSqueezeBlank, "squeeze-blank", "s", false, "Let a run of blank lines share one line number")
	catCmd.Flags().BoolVarP(&catShowTabs, "show-tabs", "t", false, "Display TAB characters as ^I")
	catCmd.Flags().BoolVarP(&catShowTabsEnds, "show-tabs-ends", "T", false, "Equivalent to -tE")
}

func runCat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := scanner.Options{
		Display: catDisplayConfig(),
		Logger:  debugLogger(cmd, cfg),
	}

	// cat always succeeds once its arguments are valid.
	_, err = scanSources(cmd, args, opts)
	return err
}

func catDisplayConfig() types.DisplayConfig {
	return types.DisplayConfig{
		ShowLineNumbers:    catNumber,
		NumberNonEmptyOnly: catNumberNonBlank,
		ShowEndMarker:      catShowEnds || catShowTabsEnds,
		SqueezeBlankRuns:   catSqueezeBlank,
		EscapeTabs:         catShowTabs || catShowTabsEnds,
		NumberStyle:        types.NumberStyleCat,
	}
}
