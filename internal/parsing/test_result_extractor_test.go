package parsing_test

import (
	"github.com/ragulkarthick4/Azure-Search-index/internal/parsing"
	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractTestResults", func() {
	It("produces one record per test-case grouping, in document order", func() {
		doc := documentFromMarkup(`<html><body><table id="results-table">
			<tbody class="results-table-row">
				<tr class="collapsible">
					<td class="col-result">Passed</td>
					<td class="col-testId">test_2.py::test_google_search</td>
					<td class="col-duration">00:00:07</td>
				</tr>
				<tr class="extras-row">
					<td class="extras">
						<div class="log">INFO navigating to https://www.google.com</div>
						<div class="media"><img src="data:image/png;base64,iVBORw0KGgo="/></div>
					</td>
				</tr>
			</tbody>
			<tbody class="results-table-row">
				<tr class="collapsible">
					<td class="col-result">Failed</td>
					<td class="col-testId">test_2.py::test_login</td>
					<td class="col-duration">00:00:12</td>
				</tr>
			</tbody>
		</table></body></html>`)

		records := parsing.ExtractTestResults(doc)

		Expect(records).To(HaveLen(2))
		Expect(records[0]).To(Equal(v1.TestCaseRecord{
			TestID:   "test_2.py::test_google_search",
			Result:   "Passed",
			Duration: "00:00:07",
			Log:      "INFO navigating to https://www.google.com",
			Attachments: []v1.Attachment{
				{
					Name:       "Screenshot",
					FormatType: v1.AttachmentFormatImage,
					Content:    "data:image/png;base64,iVBORw0KGgo=",
				},
			},
		}))
		Expect(records[1]).To(Equal(v1.TestCaseRecord{
			TestID:   "test_2.py::test_login",
			Result:   "Failed",
			Duration: "00:00:12",
			Log:      parsing.NoLogOutput,
		}))
	})

	It("drops groupings that miss one of the primary cells", func() {
		doc := documentFromMarkup(`<html><body><table id="results-table">
			<tbody class="results-table-row">
				<tr class="collapsible">
					<td class="col-result">Skipped</td>
					<td class="col-testId">test_2.py::test_checkout</td>
				</tr>
			</tbody>
			<tbody class="results-table-row">
				<tr class="collapsible">
					<td class="col-result">Passed</td>
					<td class="col-testId">test_2.py::test_homepage</td>
					<td class="col-duration">00:00:03</td>
				</tr>
			</tbody>
		</table></body></html>`)

		records := parsing.ExtractTestResults(doc)

		Expect(records).To(HaveLen(1))
		Expect(records[0].TestID).To(Equal("test_2.py::test_homepage"))
	})

	It("returns an empty slice for a document without a results table", func() {
		Expect(parsing.ExtractTestResults(documentFromMarkup("<html><body></body></html>"))).To(BeEmpty())
	})
})
