package main

// These constants hold the "long" description of a subcommand. These get printed when running `--help`, for
// example.
const (
	descriptionAzindex = `azindex ingests self-contained pytest-html reports and converts them into
normalized, search-indexable records.

Environment data is preferably read from the report's embedded JSON blob; when
the blob is malformed beyond repair, the rendered environment table is scraped
instead. Either way, one index document is produced per test case and uploaded
to an Azure AI Search index.`

	descriptionParseResults = `'azindex parse results' parses one or more report documents and prints the
normalized form as JSON, without talking to the search service.

Example use:

	azindex parse results report.html`

	descriptionProcess = `'azindex process' parses one or more report documents, converts every test case
into a search-index document, and uploads the documents in one batch per report.

Example use:

	azindex process --search-host myservice.search.windows.net --api-key "$KEY" reports/*.html`
)
