package v1

// IndexDocument is the flattened, self-contained record unit handed to the search index, one per test case.
// Each build produces fresh ids, so repeated runs append rather than overwrite. The embedded environment is
// a value copy; mutating one document never affects another.
type IndexDocument struct {
	ID          string            `json:"id"`
	TestID      string            `json:"testId"`
	Result      string            `json:"result"`
	Duration    string            `json:"duration"`
	Log         string            `json:"log"`
	Timestamp   string            `json:"timestamp"`
	Environment EnvironmentRecord `json:"environment"`
	Metadata    ReportMetadata    `json:"metadata"`
	Title       string            `json:"title"`
}
