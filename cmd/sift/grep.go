package main

import (
	"github.com/praetorian-inc/sift/pkg/config"
	"github.com/praetorian-inc/sift/pkg/format"
	"github.com/praetorian-inc/sift/pkg/matcher"
	"github.com/praetorian-inc/sift/pkg/scanner"
	"github.com/praetorian-inc/sift/pkg/types"
	"github.com/spf13/cobra"
)

var (
	grepIgnoreCase   bool
	grepInvert       bool
	grepLineNumbers  bool
	grepWholeLine    bool
	grepWholeWord    bool
	grepCount        bool
	grepFilesWith    bool
	grepFilesWithout bool
	grepFixed        bool
	grepPerl         bool
	grepExtended     bool
	grepColor        string
)

var grepCmd = &cobra.Command{
	Use:   "grep [flags] PATTERN [FILE...]",
	Short: "Print lines that match a pattern",
	Long: `Search each FILE for lines matching PATTERN, a POSIX extended regular
expression. With no FILE, or when FILE is -, read standard input.

Exit status is 0 if any line was selected, 1 otherwise or on error.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return &types.UsageError{Msg: "missing pattern argument"}
		}
		return nil
	},
	RunE: runGrep,
}

func init() {
	grepCmd.Flags().BoolVarP(&grepIgnoreCase, "ignore-case", "i", false, "Ignore case distinctions in patterns and data")
	grepCmd.Flags().BoolVarP(&grepInvert, "invert-match", "v", false, "Select non-matching lines")
	grepCmd.Flags().BoolVarP(&grepLineNumbers, "line-number", "n", false, "Prefix output with the 1-based line number")
	grepCmd.Flags().BoolVarP(&grepWholeLine, "line-regexp", "x", false, "Match only whole lines")
	grepCmd.Flags().BoolVarP(&grepWholeWord, "word-regexp", "w", false, "Match whitespace-delimited words as long as the pattern")
	grepCmd.Flags().BoolVarP(&grepCount, "count", "c", false, "Print only a count of selected lines per file")
	grepCmd.Flags().BoolVarP(&grepFilesWith, "files-with-matches", "l", false, "Print only names of files with selected lines")
	grepCmd.Flags().BoolVarP(&grepFilesWithout, "files-without-match", "L", false, "Print only names of files with no selected lines")
	grepCmd.Flags().BoolVarP(&grepFixed, "fixed-strings", "F", false, "PATTERN is a newline-separated list of literal strings")
	grepCmd.Flags().BoolVarP(&grepPerl, "perl-regexp", "P", false, "PATTERN is a Perl-compatible regular expression")
	grepCmd.Flags().BoolVarP(&grepExtended, "extended-regexp", "E", false, "PATTERN is a POSIX extended regular expression (default)")
	grepCmd.Flags().StringVar(&grepColor, "color", "auto", "Highlight matches: auto, always, never")
}

func runGrep(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return &types.UsageError{Msg: "missing pattern argument"}
	}
	pattern, names := args[0], args[1:]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGrepDefaults(cmd, cfg)
	logger := debugLogger(cmd, cfg)

	mode, err := types.ResolveMode(grepWholeLine, grepWholeWord)
	if err != nil {
		return err
	}
	engine, err := resolveEngine(cfg)
	if err != nil {
		return err
	}
	useColor, err := colorEnabled(grepColor, cmd.OutOrStdout())
	if err != nil {
		return &types.UsageError{Msg: err.Error()}
	}

	m, err := matcher.New(matcher.Config{
		Pattern:    pattern,
		IgnoreCase: grepIgnoreCase,
		WholeLine:  mode == types.ModeWholeLine,
		Engine:     engine,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	logger.Log("compiled %q with %s engine (mode=%s)", pattern, engine, mode)

	opts := scanner.Options{
		Matcher: m,
		Mode:    mode,
		Display: grepDisplayConfig(),
		Palette: format.NewPalette(useColor),
		Logger:  logger,
	}

	outcomes, err := scanSources(cmd, names, opts)
	if err != nil {
		return err
	}
	if code := types.ExitStatus(outcomes); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// applyGrepDefaults fills flags the user did not set from the config file.
func applyGrepDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("ignore-case") && cfg.IgnoreCase {
		grepIgnoreCase = true
	}
	if !cmd.Flags().Changed("line-number") && cfg.LineNumbers {
		grepLineNumbers = true
	}
	if !cmd.Flags().Changed("color") && cfg.Color != "" {
		grepColor = cfg.Color
	}
}

// resolveEngine picks the engine from -F/-P/-E, falling back to the config file.
func resolveEngine(cfg *config.Config) (matcher.Engine, error) {
	selected := 0
	for _, set := range []bool{grepFixed, grepPerl, grepExtended} {
		if set {
			selected++
		}
	}
	if selected > 1 {
		return matcher.EnginePOSIX, &types.UsageError{Msg: "conflicting matchers specified"}
	}

	switch {
	case grepFixed:
		return matcher.EngineFixed, nil
	case grepPerl:
		return matcher.EnginePerl, nil
	case grepExtended:
		return matcher.EnginePOSIX, nil
	}
	engine, err := matcher.ParseEngine(cfg.Engine)
	if err != nil {
		return matcher.EnginePOSIX, &types.UsageError{Msg: err.Error()}
	}
	return engine, nil
}

func grepDisplayConfig() types.DisplayConfig {
	return types.DisplayConfig{
		ShowLineNumbers: grepLineNumbers,
		InvertMatch:     grepInvert,
		SilentCount:     grepCount,
		FilenameOnly:    grepFilesWith || grepFilesWithout,
		ListNonMatching: grepFilesWithout,
		NumberStyle:     types.NumberStyleGrep,
	}
}
