package parsing

import (
	"regexp"
	"strings"
)

// versionNoiseRegexp matches the reporter's "marker" artifact (in both its escaped and literal-newline form)
// as well as any single or double quote character.
var versionNoiseRegexp = regexp.MustCompile(`marker(\\n|\n)|["']`)

// CleanVersionString normalizes a free-text version token into a clean version value. It strips reporter
// artifacts and quotes, keeps only the text after the first colon (if any), and trims whitespace.
// The function is total over all string inputs and idempotent for version tokens.
func CleanVersionString(token string) string {
	if token == "" {
		return ""
	}

	cleaned := versionNoiseRegexp.ReplaceAllString(token, "")

	if i := strings.Index(cleaned, ":"); i >= 0 {
		cleaned = cleaned[i+1:]
	}

	return strings.TrimSpace(cleaned)
}
