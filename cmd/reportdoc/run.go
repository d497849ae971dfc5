package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	reportdoc "github.com/rod-americo/reportdoc"
	"github.com/rod-americo/reportdoc/internal/config"
)

// run executes the CLI: flag parsing, mode dispatch, config resolution, and
// the build itself. args excludes the program name.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.help {
		printUsage(stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintln(stdout, Version)
		return nil
	}

	if len(positional) == 0 {
		return ErrMissingMode
	}

	mode := ParseMode(positional[0])
	if mode == ModeUnsupported {
		return fmt.Errorf("%w: %q", ErrUnknownMode, positional[0])
	}

	cfg, err := resolveConfig(flags.config)
	if err != nil {
		return err
	}

	svc, err := newService(cfg, flags)
	if err != nil {
		return err
	}

	in := reportdoc.BuildInput{
		Candidates: cfg.Input.Candidates,
		OutputPath: cfg.Output.Path,
	}
	if flags.source != "" {
		in.Candidates = []string{flags.source}
	}
	if flags.output != "" {
		in.OutputPath = flags.output
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "building %s documentation\n", mode)
	}

	result, err := svc.Build(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, displayPath(result.OutputPath))
	return nil
}

// resolveConfig loads the named config, or defaults when none was given.
func resolveConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// newService builds the compile service from config plus flag overrides.
func newService(cfg *config.Config, flags *cliFlags) (*reportdoc.Service, error) {
	var opts []reportdoc.Option

	style := cfg.Site.Style
	if flags.style != "" {
		style = flags.style
	}
	if style != "" {
		opts = append(opts, reportdoc.WithStyle(style))
	}
	if cfg.Site.NavScript != "" {
		opts = append(opts, reportdoc.WithNavScript(cfg.Site.NavScript))
	}

	return reportdoc.NewService(opts...)
}

// displayPath prefers a path relative to the working directory.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
