package main

import (
	"errors"
	"strings"
)

// Sentinel errors for mode dispatch.
var (
	ErrMissingMode = errors.New("missing build mode")
	ErrUnknownMode = errors.New("unknown build mode")
)

// Mode is the build mode selected by the positional argument.
type Mode int

// Supported build modes. ModeReport and ModeAll both trigger the same
// single-document build; "all" exists so callers scripting a larger site
// build keep working.
const (
	ModeUnsupported Mode = iota
	ModeReport
	ModeAll
)

// ParseMode maps the positional argument to a Mode.
func ParseMode(arg string) Mode {
	switch strings.ToLower(arg) {
	case "report":
		return ModeReport
	case "all":
		return ModeAll
	}
	return ModeUnsupported
}

// String returns the command-line spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeReport:
		return "report"
	case ModeAll:
		return "all"
	}
	return "unsupported"
}
