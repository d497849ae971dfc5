package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps flag parsing failures for exit-code mapping.
var ErrInvalidFlags = errors.New("invalid flags")

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	config  string
	source  string
	output  string
	style   string
	verbose bool
	version bool
	help    bool
}

// parseFlags parses args (excluding the program name) and returns the flags
// plus the remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("reportdoc", flag.ContinueOnError)
	fs.SetOutput(discard{})

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.source, "source", "", "source markdown file (overrides candidate probing)")
	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVar(&f.style, "style", "", "embedded stylesheet name")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}

// discard silences pflag's own error printing; run formats errors itself.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
