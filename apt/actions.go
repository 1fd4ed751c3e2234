package apt

import "fmt"

type ActionID string

// Action is one numbered entry of the interactive menu.
type Action struct {
	ID          ActionID
	Description string
	Command     Command
	Mutating    bool
}

func (it Action) NeedsInput() bool {
	return it.Command.NeedsInput()
}

func (it Action) Build(tokens []string) (Argv, error) {
	argv, err := it.Command.Build(tokens)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", it.ID, err)
	}
	return argv, nil
}

// Menu is the ordered, read-only action table.
type Menu []Action

// DefaultActions builds the seventeen menu actions on top of the given binaries.
func DefaultActions(bins Binaries) Menu {
	bins = bins.WithDefaults()
	apt, cache := bins.Apt, bins.AptCache
	return Menu{
		{"1", "Install a package", ParameterizedCommand(apt, "install", "-y"), true},
		{"2", "Install specific version of a package", ParameterizedCommand(apt, "install", "-y"), true},
		{"3", "Remove a package", ParameterizedCommand(apt, "remove", "-y"), true},
		{"4", "Completely remove a package", ParameterizedCommand(apt, "purge", "-y"), true},
		{"5", "Install recommended packages", ParameterizedCommand(apt, "install", "--install-recommends", "-y"), true},
		{"6", "Install without recommended dependencies", ParameterizedCommand(apt, "install", "--no-install-recommends", "-y"), true},
		{"7", "Upgrade installed packages", FixedCommand(apt, "upgrade", "-y"), true},
		{"8", "Update package list", FixedCommand(apt, "update"), true},
		{"9", "Upgrade the entire system", FixedCommand(apt, "full-upgrade", "-y"), true},
		{"10", "Remove unused packages", FixedCommand(apt, "autoremove", "-y"), true},
		{"11", "Search for a package", ParameterizedCommand(apt, "search"), false},
		{"12", "Show package details", ParameterizedCommand(apt, "show"), false},
		{"13", "List installed packages", FixedCommand(apt, "list", "--installed"), false},
		{"14", "Check package dependencies", ParameterizedCommand(cache, "depends"), false},
		{"15", "Clean package cache", FixedCommand(apt, "clean"), true},
		{"16", "List upgradable packages", FixedCommand(apt, "list", "--upgradable"), false},
		{"17", "Simulate install of a package", ParameterizedCommand(apt, "install", "--simulate"), false},
	}
}

func (it Menu) Find(id ActionID) (Action, bool) {
	for _, action := range it {
		if action.ID == id {
			return action, true
		}
	}
	return Action{}, false
}

func (it Menu) Keys() []string {
	result := make([]string, 0, len(it))
	for _, action := range it {
		result = append(result, string(action.ID))
	}
	return result
}

// Rows returns key/description pairs in menu order, ready for rendering.
func (it Menu) Rows() [][]string {
	result := make([][]string, 0, len(it))
	for _, action := range it {
		result = append(result, []string{string(action.ID), action.Description})
	}
	return result
}
