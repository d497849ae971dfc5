package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reportdoc <mode> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w, "  report     Build the report documentation page")
	fmt.Fprintln(w, "  all        Build everything (currently identical to report)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "      --source <path>    Source markdown file (overrides candidate probing)")
	fmt.Fprintln(w, "  -o, --output <path>    Output file path (default: sibling .html of source)")
	fmt.Fprintln(w, "      --style <name>     Embedded stylesheet name (default: report)")
	fmt.Fprintln(w, "  -v, --verbose          Verbose diagnostics on stderr")
	fmt.Fprintln(w, "      --version          Print version and exit")
	fmt.Fprintln(w, "  -h, --help             Print this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "On success the output file's relative path is printed to stdout.")
}
