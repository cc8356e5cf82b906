package parsing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	v1 "github.com/ragulkarthick4/Azure-Search-index/internal/reportschema/v1"
)

// ExtractionSource names the path that produced an environment record.
type ExtractionSource string

const (
	// ExtractionSourceJSONBlob means the environment was read from the embedded JSON blob.
	ExtractionSourceJSONBlob ExtractionSource = "json-blob"

	// ExtractionSourceHTMLTable means the environment was scraped from the rendered environment table.
	ExtractionSourceHTMLTable ExtractionSource = "html-table"
)

// EnvironmentExtraction is the tagged result of an environment extraction. The blob path is always preferred;
// Source records which path actually produced the record, and FallbackReason explains why the blob path was
// abandoned (empty when Source is ExtractionSourceJSONBlob). The two paths are never merged.
type EnvironmentExtraction struct {
	Record         v1.EnvironmentRecord
	Source         ExtractionSource
	FallbackReason string
}

// embeddedBlob mirrors the JSON payload carried in the report's data container. Only the environment object
// is of interest; everything else in the blob is ignored.
type embeddedBlob struct {
	Environment *embeddedEnvironment `json:"environment"`
}

type embeddedEnvironment struct {
	Python       string           `json:"Python"`
	Platform     string           `json:"Platform"`
	PlatformType string           `json:"PLATFORM"`
	BaseURL      string           `json:"Base URL"`
	Packages     embeddedPackages `json:"Packages"`
	Plugins      embeddedPlugins  `json:"plugins"`
}

type embeddedPackages struct {
	Pytest string `json:"pytest"`
	Pluggy string `json:"pluggy"`
}

type embeddedPlugins struct {
	BaseURL    string `json:"base-url"`
	Playwright string `json:"playwright"`
	Asyncio    string `json:"asyncio"`
	HTML       string `json:"html"`
	Metadata   string `json:"metadata"`
}

// ExtractEnvironment produces a normalized environment record from a report document. It is a total
// function: it always returns a fully-populated record, with empty strings where data is unavailable.
func ExtractEnvironment(doc *goquery.Document) EnvironmentExtraction {
	blob, found := doc.Find("div#data-container").Attr("data-jsonblob")
	if !found {
		return EnvironmentExtraction{
			Record:         environmentFromTable(doc),
			Source:         ExtractionSourceHTMLTable,
			FallbackReason: "the report carries no embedded data container",
		}
	}

	var parsed embeddedBlob
	if err := json.Unmarshal([]byte(RepairJSONBlob(blob)), &parsed); err != nil {
		return EnvironmentExtraction{
			Record:         environmentFromTable(doc),
			Source:         ExtractionSourceHTMLTable,
			FallbackReason: fmt.Sprintf("the embedded blob is not parseable after repair: %s", err),
		}
	}

	if parsed.Environment == nil {
		return EnvironmentExtraction{
			Record:         environmentFromTable(doc),
			Source:         ExtractionSourceHTMLTable,
			FallbackReason: "the embedded blob carries no environment object",
		}
	}

	env := parsed.Environment
	return EnvironmentExtraction{
		Source: ExtractionSourceJSONBlob,
		Record: v1.EnvironmentRecord{
			InterpreterVersion: env.Python,
			Platform:           env.Platform,
			PlatformType:       env.PlatformType,
			BaseURL:            env.BaseURL,
			Packages: v1.PackageVersions{
				Pytest: CleanVersionString(env.Packages.Pytest),
				Pluggy: CleanVersionString(env.Packages.Pluggy),
			},
			Plugins: v1.PluginVersions{
				BaseURL:    CleanVersionString(env.Plugins.BaseURL),
				Playwright: CleanVersionString(env.Plugins.Playwright),
				Asyncio:    CleanVersionString(env.Plugins.Asyncio),
				HTML:       CleanVersionString(env.Plugins.HTML),
				Metadata:   CleanVersionString(env.Plugins.Metadata),
			},
		},
	}
}

// environmentFromTable scrapes the rendered two-column environment table. List-valued cells (Packages,
// Plugins) hold one colon-delimited "name: version" pair per list item.
func environmentFromTable(doc *goquery.Document) v1.EnvironmentRecord {
	var record v1.EnvironmentRecord

	doc.Find("table#environment tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		key := strings.TrimSpace(cells.Eq(0).Text())
		value := cells.Eq(1)

		switch key {
		case "Packages":
			value.Find("li").Each(func(_ int, item *goquery.Selection) {
				text := strings.TrimSpace(item.Text())
				switch {
				case strings.Contains(text, "pytest:"):
					record.Packages.Pytest = CleanVersionString(text)
				case strings.Contains(text, "pluggy:"):
					record.Packages.Pluggy = CleanVersionString(text)
				}
			})
		case "Plugins":
			value.Find("li").Each(func(_ int, item *goquery.Selection) {
				text := strings.TrimSpace(item.Text())
				switch {
				case strings.Contains(text, "base-url:"):
					record.Plugins.BaseURL = CleanVersionString(text)
				case strings.Contains(text, "playwright:"):
					record.Plugins.Playwright = CleanVersionString(text)
				case strings.Contains(text, "asyncio:"):
					record.Plugins.Asyncio = CleanVersionString(text)
				case strings.Contains(text, "html:"):
					record.Plugins.HTML = CleanVersionString(text)
				case strings.Contains(text, "metadata:"):
					record.Plugins.Metadata = CleanVersionString(text)
				}
			})
		case "Python":
			record.InterpreterVersion = strings.TrimSpace(value.Text())
		case "Platform":
			record.Platform = strings.TrimSpace(value.Text())
		case "PLATFORM":
			record.PlatformType = strings.TrimSpace(value.Text())
		case "Base URL":
			record.BaseURL = strings.TrimSpace(value.Text())
		}
	})

	return record
}
