package catalog

import (
	"path/filepath"
	"strings"

	"github.com/randalmurphal/ragforge/config"
)

// ExampleFilePath is where the bundled example document lands inside a
// generated project when the operator picks the example-data option.
const ExampleFilePath = "data/example.pdf"

// Templates returns every selectable template, in display order.
func Templates() []config.Template {
	return []config.Template{
		config.TemplateStreaming,
		config.TemplateSimple,
		config.TemplateCommunity,
		config.TemplateLlamaPack,
	}
}

// Frameworks returns the frameworks offered for a template. The full-stack
// default is only available for the streaming template.
func Frameworks(t config.Template) []config.Framework {
	if t == config.TemplateStreaming {
		return []config.Framework{
			config.FrameworkNextJS,
			config.FrameworkExpress,
			config.FrameworkFastAPI,
		}
	}
	return []config.Framework{
		config.FrameworkExpress,
		config.FrameworkFastAPI,
	}
}

// UIs returns the frontend component styles.
func UIs() []config.UI {
	return []config.UI{config.UIShadcn, config.UIHTML}
}

// vectorDBsByLanguage maps template languages to the vector stores that
// actually exist in the template catalog for that language.
var vectorDBsByLanguage = map[config.Language][]config.VectorDB{
	config.LanguagePython: {
		config.VectorDBNone,
		config.VectorDBMongo,
		config.VectorDBPg,
		config.VectorDBPinecone,
	},
	config.LanguageTypeScript: {
		config.VectorDBNone,
		config.VectorDBMongo,
		config.VectorDBPinecone,
	},
}

// VectorDBs returns the vector stores available for the framework's
// template language.
func VectorDBs(f config.Framework) []config.VectorDB {
	return vectorDBsByLanguage[f.Language()]
}

// Tools returns the agent tools the Python templates can be equipped with.
func Tools() []config.Tool {
	return []config.Tool{
		{Name: "wikipedia", DisplayName: "Wikipedia"},
		{Name: "google_search", DisplayName: "Google Search", RequiresConfig: true},
		{Name: "weather", DisplayName: "Weather", RequiresConfig: true},
		{Name: "interpreter", DisplayName: "Code Interpreter", RequiresConfig: true},
	}
}

// ToolByName looks up a tool descriptor by its plan name.
func ToolByName(name string) (config.Tool, bool) {
	for _, tool := range Tools() {
		if tool.Name == name {
			return tool, true
		}
	}
	return config.Tool{}, false
}

// supportedExtensions lists the document types the ingestion pipeline of the
// generated apps can read.
var supportedExtensions = []string{".csv", ".docx", ".md", ".pdf", ".txt"}

// SupportedExtensions returns the ingestible file extensions, sorted.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

// IsSupportedFile reports whether the file's extension can be ingested.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}
