package apt

import "strings"

// Tokenize splits raw user input on runs of whitespace. Blank input yields an
// empty result, which callers treat as "no input provided". Tokens are not
// unquoted, unescaped or validated in any way.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
