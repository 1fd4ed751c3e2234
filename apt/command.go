package apt

import (
	"errors"
	"strings"
)

var (
	// ErrNoInput is returned when a parameterized command gets no tokens.
	ErrNoInput = errors.New("no input provided")
)

// Argv is a complete invocation of an external tool, program name first.
type Argv []string

func (it Argv) Program() string {
	if len(it) == 0 {
		return ""
	}
	return it[0]
}

func (it Argv) String() string {
	return strings.Join(it, " ")
}

type CommandKind uint8

const (
	Fixed CommandKind = iota
	Parameterized
)

func (it CommandKind) String() string {
	switch it {
	case Fixed:
		return "fixed"
	case Parameterized:
		return "parameterized"
	default:
		return "unknown"
	}
}

// Command is either a fixed vector or a prefix that user tokens get appended
// to. Callers never need to inspect the kind; NeedsInput and Build cover both.
type Command struct {
	kind   CommandKind
	prefix Argv
}

func FixedCommand(argv ...string) Command {
	return Command{kind: Fixed, prefix: append(Argv(nil), argv...)}
}

func ParameterizedCommand(prefix ...string) Command {
	return Command{kind: Parameterized, prefix: append(Argv(nil), prefix...)}
}

func (it Command) Kind() CommandKind {
	return it.kind
}

func (it Command) NeedsInput() bool {
	return it.kind == Parameterized
}

func (it Command) Program() string {
	return it.prefix.Program()
}

// Prefix returns a copy of the fixed part of the vector.
func (it Command) Prefix() Argv {
	return append(Argv(nil), it.prefix...)
}

// Build returns a fresh argument vector. Fixed commands ignore tokens;
// parameterized ones fail with ErrNoInput when there is nothing to append.
func (it Command) Build(tokens []string) (Argv, error) {
	if it.kind == Fixed {
		return it.Prefix(), nil
	}
	if len(tokens) == 0 {
		return nil, ErrNoInput
	}
	result := make(Argv, 0, len(it.prefix)+len(tokens))
	result = append(result, it.prefix...)
	return append(result, tokens...), nil
}

// Template shows the vector with a placeholder where user tokens go.
func (it Command) Template() string {
	if it.kind == Fixed {
		return it.prefix.String()
	}
	return it.prefix.String() + " <packages>"
}
