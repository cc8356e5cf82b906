// Package v1 holds the normalized schema that all report extraction paths produce. It is the contract
// between the parsing pipeline and the index document builder.
package v1

// ReportMetadata is the fixed metadata tuple describing a processing run. It is supplied by the invoking
// process, never derived from the report document itself.
type ReportMetadata struct {
	ProcessorVersion string `json:"processor_version"`
	ProcessedBy      string `json:"processed_by"`
	ProcessedAt      string `json:"processed_at"`
}

// ReportDocument is the normalized form of one parsed HTML report. It is created once per parse and not
// mutated afterwards. The document exclusively owns its environment record and test sequence.
type ReportDocument struct {
	Title       string            `json:"title"`
	Environment EnvironmentRecord `json:"environment"`
	Tests       []TestCaseRecord  `json:"tests"`
	Metadata    ReportMetadata    `json:"metadata"`
}

// NewReportDocument is the preferred constructor for ReportDocument.
func NewReportDocument(
	title string,
	environment EnvironmentRecord,
	tests []TestCaseRecord,
	metadata ReportMetadata,
) *ReportDocument {
	return &ReportDocument{
		Title:       title,
		Environment: environment,
		Tests:       tests,
		Metadata:    metadata,
	}
}
