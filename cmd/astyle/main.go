// Command astyle reformats C/C++/Objective-C/Java/C# source according to
// a named coding style. It is a thin cobra CLI over internal/pipeline —
// every actual formatting decision lives in the core packages, this file
// only resolves flags into a style.Config and drives files through.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redorca/astyle-github/colors"
	"github.com/redorca/astyle-github/internal/langtable"
	"github.com/redorca/astyle-github/internal/logging"
	"github.com/redorca/astyle-github/internal/pipeline"
	"github.com/redorca/astyle-github/internal/style"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		styleName     string
		indent        int
		tabLength     int
		maxCodeLength int
		padOper       bool
		brackets      string
		verbose       bool
		logFile       string
	)

	cmd := &cobra.Command{
		Use:   "astyle [files...]",
		Short: "Reformat C-family source files",
		Long: "astyle reformats C, C++, Objective-C, Java, and C# source files " +
			"in place according to a named coding style (see --style).",
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(verbose, logFile)

			cfg, err := resolveConfig(styleName, indent, tabLength, maxCodeLength, padOper, brackets, args)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return formatStream(os.Stdin, os.Stdout, cfg)
			}
			for _, path := range args {
				if err := formatFile(path, cfg); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&styleName, "style", string(style.OneTBS), "coding style: "+strings.Join(styleNameStrings(), ", "))
	cmd.Flags().IntVar(&indent, "indent", 0, "indent width in spaces (0 = use the style's default)")
	cmd.Flags().IntVar(&tabLength, "tab-length", 0, "tab display width (0 = use the style's default)")
	cmd.Flags().IntVar(&maxCodeLength, "max-code-length", 0, "maximum code line length in columns; accepted and stored, but lines are not wrapped")
	cmd.Flags().BoolVar(&padOper, "pad-oper", false, "pad operators with a surrounding space")
	cmd.Flags().StringVar(&brackets, "brackets", "", "override the style's brace placement: attach, break, linux, run-in")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&logFile, "log-file", "", "also write logs to this file")

	return cmd
}

func styleNameStrings() []string {
	out := make([]string, len(style.Names))
	for i, n := range style.Names {
		out[i] = string(n)
	}
	return out
}

func resolveConfig(styleName string, indent, tabLength, maxCodeLength int, padOper bool, brackets string, args []string) (style.Config, error) {
	ft := fileTypeFor(args)
	cfg, ok := style.Resolve(style.Name(styleName), ft)
	if !ok {
		return style.Config{}, fmt.Errorf("unknown style %q (choose one of %s)", styleName, strings.Join(styleNameStrings(), ", "))
	}

	if indent > 0 {
		cfg.IndentString = style.IndentString{Kind: style.IndentSpaces, Length: indent}
	}
	if tabLength > 0 {
		cfg.TabLength = tabLength
	}
	if maxCodeLength > 0 {
		cfg.MaxCodeLength = maxCodeLength
	}
	if padOper {
		cfg.PadOperators = true
	}
	if brackets != "" {
		mode, ok := parseBraceMode(brackets)
		if !ok {
			return style.Config{}, fmt.Errorf("unknown --brackets value %q", brackets)
		}
		cfg.BraceFormatMode = mode
	}
	return cfg, nil
}

func parseBraceMode(s string) (style.BraceFormatMode, bool) {
	switch strings.ToLower(s) {
	case "attach":
		return style.BraceAttach, true
	case "break":
		return style.BraceBreak, true
	case "linux":
		return style.BraceLinux, true
	case "run-in", "runin":
		return style.BraceRunIn, true
	default:
		return style.BraceNone, false
	}
}

// fileTypeFor guesses the language from the first file's extension; a
// single invocation formats every argument with one Config, matching
// the reference tool's per-run (not per-file) language selection.
func fileTypeFor(args []string) langtable.FileType {
	if len(args) == 0 {
		return langtable.C
	}
	switch {
	case strings.HasSuffix(args[0], ".java"):
		return langtable.Java
	case strings.HasSuffix(args[0], ".cs"):
		return langtable.Sharp
	default:
		return langtable.C
	}
}

func formatFile(path string, cfg style.Config) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	res, err := pipeline.Compile(pipeline.Options{Source: in, Config: cfg})
	in.Close()
	if err != nil {
		return err
	}

	if res.ChecksumIn != res.ChecksumOut {
		slog.Warn("checksum mismatch after formatting", "file", path, "in", res.ChecksumIn, "out", res.ChecksumOut)
	}
	res.Diagnostics.EmitTo(os.Stderr)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = fmt.Fprintln(out, res.Text(cfg))
	if err == nil {
		colors.GREEN.Fprintf(os.Stderr, "formatted %s\n", path)
	}
	return err
}

func formatStream(in *os.File, out *os.File, cfg style.Config) error {
	res, err := pipeline.Compile(pipeline.Options{Source: in, Config: cfg})
	if err != nil {
		return err
	}
	res.Diagnostics.EmitTo(os.Stderr)
	_, err = fmt.Fprintln(out, res.Text(cfg))
	return err
}
