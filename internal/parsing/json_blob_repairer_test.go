package parsing_test

import (
	"encoding/json"
	"fmt"

	"github.com/ragulkarthick4/Azure-Search-index/internal/parsing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ruleNamed(name string) parsing.RepairRule {
	for _, rule := range parsing.RepairRules {
		if rule.Name == name {
			return rule
		}
	}

	Fail(fmt.Sprintf("no repair rule named %q", name))
	return parsing.RepairRule{}
}

var _ = Describe("RepairRules", func() {
	Describe("trim-surrounding-quotes", func() {
		It("removes wrapping quotes and whitespace", func() {
			Expect(ruleNamed("trim-surrounding-quotes").Apply(`  "{}"  `)).To(Equal(`{}`))
		})

		It("leaves unwrapped blobs alone", func() {
			Expect(ruleNamed("trim-surrounding-quotes").Apply(`{}`)).To(Equal(`{}`))
		})
	})

	Describe("unescape-embedded-formatting", func() {
		It("unescapes quotes and flattens escaped whitespace", func() {
			Expect(ruleNamed("unescape-embedded-formatting").Apply(`{\"a\": \"b\nc\td\"}`)).
				To(Equal(`{"a": "b c d"}`))
		})
	})

	Describe("quote-bare-keys", func() {
		It("quotes unquoted object keys", func() {
			Expect(ruleNamed("quote-bare-keys").Apply(`{environment: {Python: '3.11.9'}}`)).
				To(Equal(`{"environment": {"Python": '3.11.9'}}`))
		})

		It("leaves already-quoted keys alone", func() {
			Expect(ruleNamed("quote-bare-keys").Apply(`{'base-url': '2.1.0'}`)).
				To(Equal(`{'base-url': '2.1.0'}`))
		})
	})

	Describe("tighten-quoted-values", func() {
		It("removes whitespace between the colon and a quoted value", func() {
			Expect(ruleNamed("tighten-quoted-values").Apply(`{"a": "1.0","b": "2.0"}`)).
				To(Equal(`{"a":"1.0","b":"2.0"}`))
		})
	})

	Describe("replace-single-quotes", func() {
		It("replaces single quotes with double quotes", func() {
			Expect(ruleNamed("replace-single-quotes").Apply(`{'a': 'b'}`)).To(Equal(`{"a": "b"}`))
		})
	})
})

var _ = Describe("RepairJSONBlob", func() {
	It("turns a typical malformed blob into valid JSON", func() {
		blob := `{environment: {Python: '3.11.9', Packages: {pytest: 'marker\npytest: 8.3.3', ` +
			`pluggy: '1.5.0'}, plugins: {'base-url': '2.1.0'}}}`

		repaired := parsing.RepairJSONBlob(blob)

		parsed := map[string]any{}
		Expect(json.Unmarshal([]byte(repaired), &parsed)).To(Succeed())

		environment, ok := parsed["environment"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(environment["Python"]).To(Equal("3.11.9"))

		packages, ok := environment["Packages"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(packages["pytest"]).To(Equal("marker pytest: 8.3.3"))
		Expect(packages["pluggy"]).To(Equal("1.5.0"))
	})

	It("leaves sufficiently malformed blobs invalid", func() {
		repaired := parsing.RepairJSONBlob(`{environment: {Python: 3.11.9}}`)
		Expect(json.Valid([]byte(repaired))).To(BeFalse())
	})

	It("passes valid JSON through unchanged", func() {
		blob := `{"environment":{"Python":"3.11.9"}}`
		Expect(parsing.RepairJSONBlob(blob)).To(Equal(blob))
	})
})
