package api

const (
	fieldTypeString         = "Edm.String"
	fieldTypeDateTimeOffset = "Edm.DateTimeOffset"
	fieldTypeComplex        = "Edm.ComplexType"
)

// searchField is one field definition of the search index schema.
type searchField struct {
	Name       string        `json:"name"`
	Type       string        `json:"type"`
	Key        bool          `json:"key,omitempty"`
	Searchable bool          `json:"searchable,omitempty"`
	Filterable bool          `json:"filterable,omitempty"`
	Sortable   bool          `json:"sortable,omitempty"`
	Fields     []searchField `json:"fields,omitempty"`
}

// indexSchema is the create-index request payload.
type indexSchema struct {
	Name   string        `json:"name"`
	Fields []searchField `json:"fields"`
}

// newIndexSchema returns the schema for the test-results index. The document id is the key; result and
// test identifier are filterable and sortable for the downstream UI, and the captured log is full-text
// searchable. Environment and metadata are embedded complex fields so every document is self-contained.
func newIndexSchema(name string) indexSchema {
	return indexSchema{
		Name: name,
		Fields: []searchField{
			{Name: "id", Type: fieldTypeString, Key: true},
			{Name: "testId", Type: fieldTypeString, Filterable: true, Sortable: true},
			{Name: "result", Type: fieldTypeString, Filterable: true, Sortable: true},
			{Name: "duration", Type: fieldTypeString, Sortable: true},
			{Name: "log", Type: fieldTypeString, Searchable: true},
			{Name: "timestamp", Type: fieldTypeDateTimeOffset, Filterable: true, Sortable: true},
			{Name: "environment", Type: fieldTypeComplex, Fields: []searchField{
				{Name: "python", Type: fieldTypeString},
				{Name: "platform", Type: fieldTypeString},
				{Name: "packages", Type: fieldTypeComplex, Fields: []searchField{
					{Name: "pytest", Type: fieldTypeString},
					{Name: "pluggy", Type: fieldTypeString},
				}},
				{Name: "plugins", Type: fieldTypeComplex, Fields: []searchField{
					{Name: "base_url", Type: fieldTypeString},
					{Name: "playwright", Type: fieldTypeString},
					{Name: "asyncio", Type: fieldTypeString},
					{Name: "html", Type: fieldTypeString},
					{Name: "metadata", Type: fieldTypeString},
				}},
				{Name: "platform_type", Type: fieldTypeString},
				{Name: "base_url", Type: fieldTypeString},
			}},
			{Name: "metadata", Type: fieldTypeComplex, Fields: []searchField{
				{Name: "processor_version", Type: fieldTypeString},
				{Name: "processed_by", Type: fieldTypeString},
				{Name: "processed_at", Type: fieldTypeDateTimeOffset},
			}},
			{Name: "title", Type: fieldTypeString},
		},
	}
}
