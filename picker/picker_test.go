package picker

import (
	"context"
	"fmt"
	"strings"
	"testing"

	rferrors "github.com/randalmurphal/ragforge/errors"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		goos string
		want bool
	}{
		{"darwin", true},
		{"windows", true},
		{"linux", false},
		{"freebsd", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.goos); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestPickFile_Darwin(t *testing.T) {
	runner := &MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "/Users/me/report.pdf\n", nil
		},
	}
	p := New(WithGOOS("darwin"), WithRunner(runner))

	path, err := p.PickFile(context.Background())
	if err != nil {
		t.Fatalf("PickFile: %v", err)
	}
	if path != "/Users/me/report.pdf" {
		t.Errorf("path = %q", path)
	}
	if len(runner.Calls) != 1 || !strings.HasPrefix(runner.Calls[0], "osascript -e") {
		t.Errorf("calls = %v, want one osascript invocation", runner.Calls)
	}
	if !strings.Contains(runner.Calls[0], "choose file") {
		t.Errorf("file pick should use choose file: %v", runner.Calls[0])
	}
}

func TestPickFolder_Windows(t *testing.T) {
	runner := &MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "C:\\data\\docs\r\n", nil
		},
	}
	p := New(WithGOOS("windows"), WithRunner(runner))

	path, err := p.PickFolder(context.Background())
	if err != nil {
		t.Fatalf("PickFolder: %v", err)
	}
	if path != "C:\\data\\docs" {
		t.Errorf("path = %q", path)
	}
	if len(runner.Calls) != 1 || !strings.HasPrefix(runner.Calls[0], "powershell") {
		t.Errorf("calls = %v, want one powershell invocation", runner.Calls)
	}
	if !strings.Contains(runner.Calls[0], "FolderBrowserDialog") {
		t.Errorf("folder pick should use the folder dialog: %v", runner.Calls[0])
	}
}

func TestPick_UnsupportedPlatform(t *testing.T) {
	p := New(WithGOOS("linux"), WithRunner(&MockRunner{}))
	_, err := p.PickFile(context.Background())
	if !rferrors.IsPlatform(err) {
		t.Errorf("err = %v, want platform error", err)
	}
}

func TestPick_ScriptFailure(t *testing.T) {
	runner := &MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", fmt.Errorf("osascript: execution error")
		},
	}
	p := New(WithGOOS("darwin"), WithRunner(runner))

	_, err := p.PickFile(context.Background())
	if !rferrors.IsPicker(err) {
		t.Errorf("err = %v, want picker error", err)
	}
}

func TestPick_EmptySelectionAborts(t *testing.T) {
	runner := &MockRunner{
		RunFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "\n", nil
		},
	}
	p := New(WithGOOS("windows"), WithRunner(runner))

	_, err := p.PickFolder(context.Background())
	if !rferrors.IsAbort(err) {
		t.Errorf("err = %v, want abort", err)
	}
}
