package resolve

import (
	"testing"

	rferrors "github.com/randalmurphal/ragforge/errors"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"www.example.com", "https://www.example.com", false},
		{"example.com/docs", "https://example.com/docs", false},
		{"http://example.com", "http://example.com", false},
		{"https://example.com", "https://example.com", false},
		{"  https://example.com  ", "https://example.com", false},
		{"ftp://example.com", "", true},
		{"https://", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeBaseURL(%q) = %q, want error", tt.raw, got)
				}
				if !rferrors.IsValidation(err) {
					t.Errorf("error = %v, want invalid-url validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeBaseURL(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
