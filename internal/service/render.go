package service

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Render substitutes {{name}} tokens in the template body with values from
// vars. Tokens with no matching variable are left literal: a missing variable
// then shows up verbatim in the stored body, which is auditable, instead of
// silently rendering empty.
func Render(body string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		if value, ok := vars[name]; ok {
			return value
		}
		return token
	})
}

// Truncate cuts the body to at most maxLength runes.
func Truncate(body string, maxLength int) string {
	if maxLength <= 0 {
		return body
	}

	runes := []rune(body)
	if len(runes) <= maxLength {
		return body
	}

	return string(runes[:maxLength])
}
