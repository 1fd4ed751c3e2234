package common

import (
	"strings"
)

type Verbosity uint8

const (
	Undefined Verbosity = 0
	Silently  Verbosity = 1
	Normal    Verbosity = 2
	Debugging Verbosity = 3
	Tracing   Verbosity = 4
)

var (
	Version = "dev"
	Commit  = ""

	LogLinenumbers bool

	verbosity Verbosity = Normal
)

// DefineVerbosity picks the loudest of the requested levels; silent loses to debug and trace.
func DefineVerbosity(silent, debug, trace bool) {
	switch {
	case trace:
		verbosity = Tracing
	case debug:
		verbosity = Debugging
	case silent:
		verbosity = Silently
	default:
		verbosity = Normal
	}
}

func Silent() bool {
	return verbosity == Silently
}

func DebugFlag() bool {
	return verbosity >= Debugging
}

func TraceFlag() bool {
	return verbosity >= Tracing
}

func BuildVersion() string {
	if len(strings.TrimSpace(Commit)) == 0 {
		return Version
	}
	return Version + " (" + Commit + ")"
}
