package pretty

import (
	"os"

	"github.com/joshyorko/aptcli/common"
	"golang.org/x/term"
)

// TerminalWidth returns the terminal width in columns, 80 when it cannot be detected.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	common.Trace("Terminal width detected: %d", width)
	return width
}
