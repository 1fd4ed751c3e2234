package pretty

import (
	"os"
	"strings"
)

// ColorMode represents the level of color support available in the terminal
type ColorMode int

const (
	// ColorModeNone indicates no color support (NO_COLOR set or dumb terminal)
	ColorModeNone ColorMode = iota
	// ColorModeBasic indicates 16 basic ANSI colors
	ColorModeBasic
	// ColorMode256 indicates 256-color palette support
	ColorMode256
	// ColorModeTrueColor indicates 24-bit RGB support
	ColorModeTrueColor
)

var (
	detectedColorMode ColorMode
	colorModeDetected bool
)

// DetectColorMode checks NO_COLOR, COLORTERM and TERM, in that order.
func DetectColorMode() ColorMode {
	if colorModeDetected {
		return detectedColorMode
	}
	detectedColorMode = detectColorMode()
	colorModeDetected = true
	return detectedColorMode
}

func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorModeNone
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return ColorModeNone
	}
	if strings.Contains(term, "256color") {
		return ColorMode256
	}
	return ColorModeBasic
}

// StatusColor returns the ANSI color for a command outcome.
// Mappings: running→cyan, success→green, failed→red, skipped→dim
func StatusColor(status string) string {
	if Colorless || Disabled {
		return ""
	}

	switch strings.ToLower(status) {
	case "running":
		return Cyan
	case "success", "done":
		return Green
	case "failed", "failure", "error":
		return Red
	case "skipped", "skip":
		return Faint
	default:
		return ""
	}
}

// Color256 returns an ANSI escape code for 256-color foreground text.
// Returns empty string if the terminal doesn't support 256 colors.
func Color256(n int) string {
	if Colorless || Disabled {
		return ""
	}
	if DetectColorMode() < ColorMode256 {
		return ""
	}
	if n < 0 || n > 255 {
		return ""
	}
	return csif("38;5;%dm", n)
}

// RGB returns an ANSI escape code for 24-bit foreground text.
// Returns empty string if the terminal doesn't support TrueColor.
func RGB(r, g, b int) string {
	if Colorless || Disabled {
		return ""
	}
	if DetectColorMode() < ColorModeTrueColor {
		return ""
	}
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return ""
	}
	return csif("38;2;%d;%d;%dm", r, g, b)
}
