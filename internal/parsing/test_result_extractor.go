package parsing

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// NoLogOutput is the exact log value for test cases without a captured log. Downstream consumers treat it as
// a sentinel for "no log".
const NoLogOutput = "No log output captured."

// ExtractTestResults walks the report's results table and produces one record per test case, in document
// order. Each test-case grouping has one primary row carrying result, identifier and duration cells, an
// optional captured-log element, and an optional attachments row with a screenshot reference. Groupings
// missing any of the three primary cells are dropped entirely rather than defaulted.
func ExtractTestResults(doc *goquery.Document) []v1.TestCaseRecord {
	records := make([]v1.TestCaseRecord, 0)

	doc.Find("table#results-table tbody.results-table-row").Each(func(_ int, group *goquery.Selection) {
		row := group.Find("tr.collapsible").First()
		if row.Length() == 0 {
			return
		}

		resultCell := row.Find("td.col-result").First()
		testIDCell := row.Find("td.col-testId").First()
		durationCell := row.Find("td.col-duration").First()

		if resultCell.Length() == 0 || testIDCell.Length() == 0 || durationCell.Length() == 0 {
			return
		}

		record := v1.TestCaseRecord{
			TestID:   strings.TrimSpace(testIDCell.Text()),
			Result:   strings.TrimSpace(resultCell.Text()),
			Duration: strings.TrimSpace(durationCell.Text()),
			Log:      NoLogOutput,
		}

		if logElement := group.Find("div.log").First(); logElement.Length() > 0 {
			record.Log = strings.TrimSpace(logElement.Text())
		}

		src, ok := group.Find("tr.extras-row div.media img").First().Attr("src")
		if ok && src != "" {
			record.Attachments = append(record.Attachments, v1.NewImageAttachment(src))
		}

		records = append(records, record)
	})

	return records
}
