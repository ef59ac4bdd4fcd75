package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	minigrep "github.com/elementallyXD/minigrep-hw"
)

var (
	flagIgnoreCase  bool
	flagInvert      bool
	flagLineNumber  bool
	flagCount       bool
	flagColor       string
	flagMaxLineSize int
)

var rootCmd = &cobra.Command{
	Use:   "minigrep <pattern>",
	Short: "Filter stdin lines through one compiled regex pattern",
	Long: `Minigrep reads lines from stdin and prints the ones matching the given
regular expression, in input order.

The pattern is compiled once into a Hyperscan block database (or a pure-Go
engine in non-CGO builds) and every line is scanned against it.

Example:
  cat emails.txt | minigrep '^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$'`,
	Args: cobra.ExactArgs(1),
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagIgnoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	rootCmd.Flags().BoolVarP(&flagInvert, "invert-match", "v", false, "Print lines that do not match")
	rootCmd.Flags().BoolVarP(&flagLineNumber, "line-number", "n", false, "Prefix each printed line with its line number")
	rootCmd.Flags().BoolVarP(&flagCount, "count", "c", false, "Print only a count of matching lines")
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "Colorize matching lines: auto, always, never")
	rootCmd.Flags().IntVar(&flagMaxLineSize, "max-line-size", 0, "Longest accepted input line in bytes")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runner is the slice of minigrep.Grep the command needs; tests swap
// newRunner to exercise teardown failures.
type runner interface {
	Run(r io.Reader, w io.Writer) (minigrep.Stats, error)
	Close() error
}

var newRunner = func(pattern string, opts ...minigrep.Option) (runner, error) {
	return minigrep.New(pattern, opts...)
}

func runRoot(cmd *cobra.Command, args []string) (err error) {
	pattern := args[0]

	style, err := matchStyle(flagColor, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var opts []minigrep.Option
	if flagIgnoreCase {
		opts = append(opts, minigrep.WithCaseInsensitive())
	}
	if flagInvert {
		opts = append(opts, minigrep.WithInvert())
	}
	if flagLineNumber {
		opts = append(opts, minigrep.WithLineNumbers())
	}
	if flagMaxLineSize > 0 {
		opts = append(opts, minigrep.WithMaxLineSize(flagMaxLineSize))
	}
	if style != nil {
		opts = append(opts, minigrep.WithStyle(style))
	}

	g, err := newRunner(pattern, opts...)
	if err != nil {
		return fmt.Errorf("compiling pattern: %w", err)
	}
	// releasing the scratch space and database is part of the run; a
	// failure there is fatal too, unless the run already failed
	defer func() {
		if cerr := g.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("releasing pattern resources: %w", cerr)
		}
	}()

	out := cmd.OutOrStdout()
	if flagCount {
		out = io.Discard
	}

	stats, err := g.Run(cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	if flagCount {
		fmt.Fprintln(cmd.OutOrStdout(), stats.Matched)
	}

	return nil
}

// matchStyle resolves the --color flag into a formatter, probing the
// output for a terminal in auto mode.
func matchStyle(mode string, out io.Writer) (*color.Color, error) {
	style := color.New(color.FgRed, color.Bold)

	switch mode {
	case "always":
		style.EnableColor()
	case "never":
		return nil, nil
	case "auto":
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return nil, nil
		}
	default:
		return nil, fmt.Errorf("invalid --color mode %q (want auto, always or never)", mode)
	}

	return style, nil
}
