package pretty

import (
	"math"
	"strings"
)

var basicRainbow = []*string{&Red, &Yellow, &Green, &Cyan, &Magenta}

var paletteRainbow = []int{196, 208, 226, 118, 46, 51, 21, 93, 201}

// Rainbow colors text one rune at a time, lolcat style. Whitespace is left
// alone and plain text is returned when colors are not available.
func Rainbow(text string) string {
	if Colorless || Disabled || len(text) == 0 {
		return text
	}
	mode := DetectColorMode()
	if mode == ColorModeNone {
		return text
	}
	var out strings.Builder
	colored := false
	index := 0
	for _, char := range text {
		if char == ' ' || char == '\t' || char == '\n' || char == '\r' {
			out.WriteRune(char)
			continue
		}
		code := rainbowColor(mode, index)
		index++
		if len(code) > 0 {
			colored = true
			out.WriteString(code)
		}
		out.WriteRune(char)
	}
	if colored {
		out.WriteString(csi("0m"))
	}
	return out.String()
}

func rainbowColor(mode ColorMode, index int) string {
	switch mode {
	case ColorModeTrueColor:
		frequency := 0.3
		phase := frequency * float64(index)
		red := int(math.Sin(phase)*127 + 128)
		green := int(math.Sin(phase+2*math.Pi/3)*127 + 128)
		blue := int(math.Sin(phase+4*math.Pi/3)*127 + 128)
		return RGB(red, green, blue)
	case ColorMode256:
		return Color256(paletteRainbow[index%len(paletteRainbow)])
	default:
		return *basicRainbow[index%len(basicRainbow)]
	}
}
