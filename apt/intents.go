package apt

import (
	"errors"
	"strings"
)

var (
	// ErrNoMatch is returned when no trigger phrase occurs in a prompt.
	ErrNoMatch = errors.New("no trigger phrase matched the prompt")
)

// IntentRule pairs a lower-case trigger phrase with the command it selects.
type IntentRule struct {
	Trigger  string
	Command  Command
	Mutating bool
}

// DefaultIntents returns the natural-language rule table. Order matters:
// overlapping triggers resolve to whichever rule comes first.
func DefaultIntents(bins Binaries) []IntentRule {
	bins = bins.WithDefaults()
	apt, cache := bins.Apt, bins.AptCache
	return []IntentRule{
		{"what's my version of apt", FixedCommand(apt, "--version"), false},
		{"update packages", FixedCommand(apt, "update"), true},
		{"upgrade system", FixedCommand(apt, "full-upgrade", "-y"), true},
		{"remove unused", FixedCommand(apt, "autoremove", "-y"), true},
		{"list installed", FixedCommand(apt, "list", "--installed"), false},
		{"search package", ParameterizedCommand(apt, "search"), false},
		{"show details", ParameterizedCommand(apt, "show"), false},
		{"install package", ParameterizedCommand(apt, "install", "-y"), true},
		{"check dependencies", ParameterizedCommand(cache, "depends"), false},
		{"clean cache", FixedCommand(apt, "clean"), true},
		{"list upgradable", FixedCommand(apt, "list", "--upgradable"), false},
	}
}

// Match lower-cases the prompt and returns the first rule whose trigger is a
// substring of it.
func Match(prompt string, rules []IntentRule) (IntentRule, bool) {
	lowered := strings.ToLower(prompt)
	for _, rule := range rules {
		if strings.Contains(lowered, rule.Trigger) {
			return rule, true
		}
	}
	return IntentRule{}, false
}
