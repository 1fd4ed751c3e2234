package session

import (
	"github.com/joshyorko/aptcli/apt"
	"github.com/joshyorko/aptcli/common"
	"github.com/joshyorko/aptcli/operations"
	"github.com/joshyorko/aptcli/wizard"
)

const (
	promptQuestion   = "What do you want to do?"
	againQuestion    = "Do you want to run another command?"
	noInputMessage   = "No input provided."
	noMatchMessage   = "Sorry, couldn't match your prompt."
	failedForm       = "Command failed: %v"
	runningForm      = "Running: %s"
	preflightWarning = "Warning: %s"
)

// Collector produces the raw package input for parameterized commands.
type Collector interface {
	Collect(console *wizard.Console) (string, error)
}

// Checker looks for conditions worth warning about before a command runs.
type Checker interface {
	Check(mutating bool) []string
}

// Session drives one interactive run, either menu driven or from a single
// natural-language prompt. Every collaborator is handed in; nothing is read
// from package globals.
type Session struct {
	Console   *wizard.Console
	Title     string
	Actions   apt.Menu
	Intents   []apt.IntentRule
	Input     Collector
	Runner    operations.Runner
	Preflight Checker
}

// Run starts the mode chosen at startup.
func (it *Session) Run(natural bool) error {
	if natural {
		return it.NaturalLanguage()
	}
	return it.Menu()
}

// Menu loops over menu, input, execution and the "run another" question
// until the user says no. Only console failures end it with an error.
func (it *Session) Menu() error {
	for {
		key, err := it.Console.ChooseAction(it.Title, it.Actions.Rows())
		if err != nil {
			return err
		}
		action, ok := it.Actions.Find(apt.ActionID(key))
		if !ok {
			continue
		}
		common.Trace("menu action %s selected: %s", action.ID, action.Description)
		tokens, err := it.tokens(action.NeedsInput())
		if err != nil {
			return err
		}
		if action.NeedsInput() && len(tokens) == 0 {
			it.Console.Warning(noInputMessage)
			continue
		}
		argv, err := action.Build(tokens)
		if err != nil {
			it.Console.Failure("%v", err)
			continue
		}
		it.execute(argv, action.Mutating)

		again, err := it.Console.Confirm(againQuestion)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// NaturalLanguage handles exactly one prompt and returns.
func (it *Session) NaturalLanguage() error {
	prompt, err := it.Console.Line(promptQuestion)
	if err != nil {
		return err
	}
	rule, ok := apt.Match(prompt, it.Intents)
	if !ok {
		common.Debug("%v: %q", apt.ErrNoMatch, prompt)
		it.Console.Failure(noMatchMessage)
		return nil
	}
	common.Trace("prompt %q matched %q", prompt, rule.Trigger)
	tokens, err := it.tokens(rule.Command.NeedsInput())
	if err != nil {
		return err
	}
	if rule.Command.NeedsInput() && len(tokens) == 0 {
		it.Console.Warning(noInputMessage)
		return nil
	}
	argv, err := rule.Command.Build(tokens)
	if err != nil {
		it.Console.Failure("%v", err)
		return nil
	}
	it.execute(argv, rule.Mutating)
	return nil
}

func (it *Session) tokens(needed bool) ([]string, error) {
	if !needed {
		return nil, nil
	}
	raw, err := it.Input.Collect(it.Console)
	if err != nil {
		return nil, err
	}
	return apt.Tokenize(raw), nil
}

func (it *Session) execute(argv apt.Argv, mutating bool) operations.Result {
	if it.Preflight != nil {
		for _, warning := range it.Preflight.Check(mutating) {
			it.Console.Warning(preflightWarning, warning)
		}
	}
	it.Console.Running(runningForm, argv.String())
	result := it.Runner.Run(argv)
	if !result.Success {
		it.Console.Failure(failedForm, result.Err)
		return result
	}
	common.Debug("%q succeeded in %s", argv.String(), result.Elapsed)
	return result
}
