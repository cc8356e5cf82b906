package v1

// PackageVersions holds the cleaned versions of the packages a report lists in its environment.
type PackageVersions struct {
	Pytest string `json:"pytest"`
	Pluggy string `json:"pluggy"`
}

// PluginVersions holds the cleaned versions of the reporter plugins a report lists in its environment.
type PluginVersions struct {
	BaseURL    string `json:"base_url"`
	Playwright string `json:"playwright"`
	Asyncio    string `json:"asyncio"`
	HTML       string `json:"html"`
	Metadata   string `json:"metadata"`
}

// EnvironmentRecord is the normalized test environment of a single report.
// Every field is always populated; absent data is the empty string, never omitted. Consumers rely on this.
// The serialized names match the downstream search index schema.
type EnvironmentRecord struct {
	InterpreterVersion string          `json:"python"`
	Platform           string          `json:"platform"`
	Packages           PackageVersions `json:"packages"`
	Plugins            PluginVersions  `json:"plugins"`
	PlatformType       string          `json:"platform_type"`
	BaseURL            string          `json:"base_url"`
}
