package itinerary

import "strings"

// ExtractBlock returns the first balanced { ... } block of text, braces included.
// Braces are counted wherever they appear, string literals included.
func ExtractBlock(text string) (string, error) {
	return extract(text, false)
}

// ExtractBlockQuoted behaves like ExtractBlock but ignores braces inside
// double-quoted strings, honouring backslash escapes.
func ExtractBlockQuoted(text string) (string, error) {
	return extract(text, true)
}

func extract(text string, quoted bool) (string, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", newPlanError(ErrNoStructuredBlock, text, nil)
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if quoted {
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' && inString {
				escaped = true
				continue
			}
			if c == '"' {
				inString = !inString
				continue
			}
			if inString {
				continue
			}
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", newPlanError(ErrUnbalancedBlock, text[start:], nil)
}
