package operations

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/joshyorko/aptcli/common"
)

// Executable names of tools that hold the dpkg lock while they run. Process
// names are truncated to 15 characters on Linux, hence "unattended-upgr".
var lockHolders = map[string]bool{
	"apt":             true,
	"apt-get":         true,
	"aptitude":        true,
	"dpkg":            true,
	"synaptic":        true,
	"unattended-upgr": true,
	"packagekitd":     true,
}

// Preflight looks for conditions that make apt fail in predictable ways. It
// only warns; the command is run regardless.
type Preflight struct {
	Processes    func() ([]ps.Process, error)
	EffectiveUID func() int
	Self         int
}

func NewPreflight() *Preflight {
	return &Preflight{
		Processes:    ps.Processes,
		EffectiveUID: effectiveUID,
		Self:         os.Getpid(),
	}
}

// Check returns human readable warnings. Privilege is only checked for
// commands that modify the system.
func (it *Preflight) Check(mutating bool) []string {
	warnings := make([]string, 0, 2)
	if busy := it.busyPackageManagers(); len(busy) > 0 {
		warnings = append(warnings, fmt.Sprintf("Another package manager is running (%s); apt may wait for the dpkg lock.", strings.Join(busy, ", ")))
	}
	if mutating && it.EffectiveUID != nil {
		if uid := it.EffectiveUID(); uid > 0 {
			warnings = append(warnings, fmt.Sprintf("Running as uid %d, not root; apt will likely refuse to change packages.", uid))
		}
	}
	return warnings
}

func (it *Preflight) busyPackageManagers() []string {
	if it.Processes == nil {
		return nil
	}
	processes, err := it.Processes()
	if err != nil {
		common.Uncritical("process listing", err)
		return nil
	}
	found := make([]string, 0, 2)
	for _, process := range processes {
		if process.Pid() == it.Self || process.PPid() == it.Self {
			continue
		}
		name := process.Executable()
		if lockHolders[name] {
			found = append(found, fmt.Sprintf("%s[%d]", name, process.Pid()))
		}
	}
	sort.Strings(found)
	return found
}
