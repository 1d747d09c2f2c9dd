package catalog

import (
	"testing"

	"github.com/randalmurphal/ragforge/config"
)

func TestFrameworks_NextJSOnlyForStreaming(t *testing.T) {
	has := func(list []config.Framework, f config.Framework) bool {
		for _, v := range list {
			if v == f {
				return true
			}
		}
		return false
	}

	if !has(Frameworks(config.TemplateStreaming), config.FrameworkNextJS) {
		t.Error("streaming template should offer nextjs")
	}
	if has(Frameworks(config.TemplateSimple), config.FrameworkNextJS) {
		t.Error("simple template should not offer nextjs")
	}
}

func TestVectorDBs_FilteredByLanguage(t *testing.T) {
	python := VectorDBs(config.FrameworkFastAPI)
	ts := VectorDBs(config.FrameworkExpress)

	if len(python) <= len(ts) {
		t.Errorf("python catalog (%d) should carry more stores than typescript (%d)", len(python), len(ts))
	}
	for _, db := range ts {
		if db == config.VectorDBPg {
			t.Error("typescript catalog should not offer pg")
		}
	}
	if python[0] != config.VectorDBNone || ts[0] != config.VectorDBNone {
		t.Error("none should always be the first offered store")
	}
}

func TestIsSupportedFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"report.pdf", true},
		{"REPORT.PDF", true},
		{"notes.txt", true},
		{"data.csv", true},
		{"doc.docx", true},
		{"readme.md", true},
		{"binary.exe", false},
		{"archive.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsSupportedFile(tt.path); got != tt.want {
			t.Errorf("IsSupportedFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestToolByName(t *testing.T) {
	tool, ok := ToolByName("weather")
	if !ok {
		t.Fatal("weather tool should exist")
	}
	if !tool.RequiresConfig {
		t.Error("weather tool should require config")
	}

	if _, ok := ToolByName("nonexistent"); ok {
		t.Error("unknown tool should not resolve")
	}
}
