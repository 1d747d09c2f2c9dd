package config

import "fmt"

// DataSourceType tags the origin of documents the generated app indexes.
type DataSourceType string

// DataSourceType constants.
const (
	DataSourceNone   DataSourceType = "none"
	DataSourceFile   DataSourceType = "file"
	DataSourceFolder DataSourceType = "folder"
	DataSourceWeb    DataSourceType = "web"
)

// DataSourceConfig carries the type-dependent settings of a data source.
// File and folder sources use Path and UseLlamaParse; web sources use
// BaseURL and Depth; a "none" source carries nothing.
type DataSourceConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// UseLlamaParse enables the hosted enhanced-parsing service for file
	// and folder sources. Nil means undecided.
	UseLlamaParse *bool `json:"useLlamaParse,omitempty" yaml:"use_llamaparse,omitempty"`

	BaseURL string `json:"baseUrl,omitempty" yaml:"base_url,omitempty"`
	Depth   int    `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// DataSource is a tagged variant: Config's meaningful fields depend on Type.
type DataSource struct {
	Type   DataSourceType   `json:"type" yaml:"type"`
	Config DataSourceConfig `json:"config" yaml:"config"`
}

// NoSource returns the data source for a no-context engine.
func NoSource() *DataSource {
	return &DataSource{Type: DataSourceNone}
}

// FileSource returns a single-file data source.
func FileSource(path string) *DataSource {
	return &DataSource{Type: DataSourceFile, Config: DataSourceConfig{Path: path}}
}

// FolderSource returns a folder data source.
func FolderSource(path string) *DataSource {
	return &DataSource{Type: DataSourceFolder, Config: DataSourceConfig{Path: path}}
}

// WebSource returns a website-crawl data source.
func WebSource(baseURL string, depth int) *DataSource {
	return &DataSource{Type: DataSourceWeb, Config: DataSourceConfig{BaseURL: baseURL, Depth: depth}}
}

// LlamaParseDecided reports whether the enhanced-parsing toggle has been
// answered for this source.
func (d *DataSource) LlamaParseDecided() bool {
	return d.Config.UseLlamaParse != nil
}

// LlamaParseEnabled reports the toggle, treating undecided as off.
func (d *DataSource) LlamaParseEnabled() bool {
	return d.Config.UseLlamaParse != nil && *d.Config.UseLlamaParse
}

// Validate checks the shape invariant of the tagged variant.
func (d *DataSource) Validate() error {
	switch d.Type {
	case DataSourceNone:
		return nil
	case DataSourceFile, DataSourceFolder:
		// A folder source with an empty path means "the project's data
		// directory"; a file source must name its file.
		if d.Type == DataSourceFile && d.Config.Path == "" {
			return fmt.Errorf("file data source requires a path")
		}
		return nil
	case DataSourceWeb:
		if d.Config.BaseURL == "" {
			return fmt.Errorf("web data source requires a base URL")
		}
		if d.Config.Depth < 1 {
			return fmt.Errorf("web data source requires a crawl depth of at least 1")
		}
		return nil
	case "":
		return fmt.Errorf("data source type not set")
	default:
		return fmt.Errorf("unknown data source type %q", d.Type)
	}
}
