package pretty

import (
	"os"

	"github.com/joshyorko/aptcli/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Red         string
	Green       string
	Yellow      string
	Magenta     string
	Cyan        string
	Reset       string
	Faint       string
)

func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}
	if os.Getenv("TERM") == "" {
		Colorless = true
	}

	// Prompts are safe only when all three streams are a terminal.
	Interactive = stdin && stdout && stderr

	visualOutput := stdout && !Colorless

	common.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, visualOutput && !Disabled)
	if visualOutput && !Disabled {
		White = csi("97m")
		Grey = csi("90m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Magenta = csi("95m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Faint = csi("2m")
	}
}
