package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sys/unix"

	"github.com/sublee/jsontestgen/internal/diag"
	jsontestgeninternal "github.com/sublee/jsontestgen/internal/jsontestgen"
	"github.com/sublee/jsontestgen/internal/jsontestgen/compose"
)

var Version = "dev"

func init() {
	jsontestgeninternal.Version = Version
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	v := viper.New()
	var cfgFile, colorMode string

	cmd := &cobra.Command{
		Use:           "jsontestgen [packages]",
		Short:         "Generate JSON round-trip tests for annotated struct types",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, cfgFile, colorMode, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("tags", "b", "", "comma-separated build tags")
	flags.BoolP("tests", "t", true, "load test files to avoid their names")
	flags.String("codec", compose.DefaultCodec, fmt.Sprintf("JSON codec of generated tests %v", compose.CodecNames()))
	flags.String("suffix", compose.DefaultSuffix, "suffix of test unit names")
	flags.BoolP("verbose", "v", false, "report every field found")
	flags.StringVarP(&colorMode, "color", "c", "auto", "colorize (auto|always|never)")
	flags.StringVar(&cfgFile, "config", "", "config file (default .jsontestgen.yaml)")

	for _, name := range []string{"tags", "tests", "codec", "suffix", "verbose"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, cfgFile, colorMode string, patterns []string) error {
	stderr := cmd.ErrOrStderr()

	color := false
	switch colorMode {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		err := fmt.Errorf("invalid -c value: %s", colorMode)
		fmt.Fprintln(stderr, err)
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	cfg, err := jsontestgeninternal.LoadConfig(v, wd, cfgFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	sink := diag.New(stderr, cfg.Verbose)
	outs, genErr := jsontestgeninternal.Main(cmd.Context(), wd, os.Environ(), cfg, patterns, sink)
	if genErr != nil {
		message := genErr.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(stderr, message)
	}

	// Types generated successfully are written even if others failed.
	for _, out := range jsontestgeninternal.WriteFiles(outs, sink) {
		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Generated:", out)
	}

	if genErr != nil {
		return genErr
	}
	if sink.Errors() != 0 {
		return fmt.Errorf("%d files could not be written", sink.Errors())
	}
	return nil
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

const (
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

var reDiag = regexp.MustCompile(`(?m)^(\S+:\d+:\d+:)( [a-zA-Z ]+:)?`)

// colorize adds ANSI color codes to the message. Positions are dimmed and
// error kinds are red.
func colorize(message string) string {
	return reDiag.ReplaceAllString(message, dim+"$1"+reset+red+"$2"+reset)
}
