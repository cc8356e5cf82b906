package parsing

import (
	"regexp"
	"strings"
)

// RepairRule is a single named textual rewrite that is applied to a malformed JSON blob. Rules never fail;
// they return their best-effort output for any input.
type RepairRule struct {
	Name  string
	Apply func(string) string
}

var (
	bareKeyRegexp     = regexp.MustCompile(`([{,]\s*)([a-zA-Z0-9_\-]+)\s*:`)
	quotedValueRegexp = regexp.MustCompile(`:\s*"([^"]*)"([},])`)
)

// RepairRules is the ordered list of rewrites that RepairJSONBlob applies. The order is load-bearing: later
// rules assume earlier ones already normalized quoting. Each rule can be exercised on its own.
var RepairRules = []RepairRule{
	{
		Name: "trim-surrounding-quotes",
		Apply: func(blob string) string {
			return strings.Trim(strings.TrimSpace(blob), `"`)
		},
	},
	{
		Name: "unescape-embedded-formatting",
		Apply: func(blob string) string {
			blob = strings.ReplaceAll(blob, `\"`, `"`)
			blob = strings.ReplaceAll(blob, `\n`, " ")
			return strings.ReplaceAll(blob, `\t`, " ")
		},
	},
	{
		Name: "quote-bare-keys",
		Apply: func(blob string) string {
			return bareKeyRegexp.ReplaceAllString(blob, `$1"$2":`)
		},
	},
	{
		Name: "tighten-quoted-values",
		Apply: func(blob string) string {
			return quotedValueRegexp.ReplaceAllString(blob, `:"$1"$2`)
		},
	},
	{
		Name: "replace-single-quotes",
		Apply: func(blob string) string {
			return strings.ReplaceAll(blob, "'", `"`)
		},
	},
}

// RepairJSONBlob rewrites a malformed embedded JSON string into text that is intended to be valid JSON. It
// does not parse the result; for sufficiently malformed input the output may still be invalid, which the
// caller handles via the table fallback.
func RepairJSONBlob(blob string) string {
	for _, rule := range RepairRules {
		blob = rule.Apply(blob)
	}

	return blob
}
