package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	rferrors "github.com/randalmurphal/ragforge/errors"
)

func term(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTerminal(strings.NewReader(input), &out), &out
}

func TestTerminal_Select(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"by number", "2\n", "simple"},
		{"empty takes default", "\n", "streaming"},
		{"by value", "simple\n", "simple"},
		{"retry then valid", "99\n1\n", "streaming"},
	}

	choices := Choices("streaming", "simple")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := term(tt.input)
			got, err := p.Select(context.Background(), "Which template?", choices, "streaming")
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminal_Select_AbortOnEOF(t *testing.T) {
	p, out := term("")
	_, err := p.Select(context.Background(), "Which template?", Choices("streaming"), "streaming")
	if !rferrors.IsAbort(err) {
		t.Fatalf("want abort, got %v", err)
	}
	if !strings.Contains(out.String(), showCursor) {
		t.Error("abort should restore the cursor")
	}
}

func TestTerminal_MultiSelect(t *testing.T) {
	choices := Choices("wikipedia", "weather", "interpreter")

	p, _ := term("1,3\n")
	got, err := p.MultiSelect(context.Background(), "Tools?", choices, nil)
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if len(got) != 2 || got[0] != "wikipedia" || got[1] != "interpreter" {
		t.Errorf("MultiSelect = %v, want [wikipedia interpreter]", got)
	}

	p, _ = term("\n")
	got, err = p.MultiSelect(context.Background(), "Tools?", choices, []string{"weather"})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if len(got) != 1 || got[0] != "weather" {
		t.Errorf("empty answer should take default, got %v", got)
	}
}

func TestTerminal_Input(t *testing.T) {
	p, _ := term("www.example.com\n")
	got, err := p.Input(context.Background(), "Base URL", "")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "www.example.com" {
		t.Errorf("Input = %q", got)
	}

	p, _ = term("\n")
	got, err = p.Input(context.Background(), "Base URL", "https://example.com")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "https://example.com" {
		t.Errorf("empty answer should take default, got %q", got)
	}
}

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		p, _ := term(tt.input)
		got, err := p.Confirm(context.Background(), "Enable?", tt.def)
		if err != nil {
			t.Fatalf("Confirm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q, def=%v) = %v, want %v", tt.input, tt.def, got, tt.want)
		}
	}
}

func TestTerminal_CancelMidPromptUnblocks(t *testing.T) {
	// A pipe that never delivers a line stands in for an operator who has
	// not answered yet.
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	p := NewTerminal(pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Select(ctx, "Which?", Choices("a", "b"), "a")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !rferrors.IsAbort(err) {
			t.Errorf("Select after cancellation = %v, want abort", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Select still blocked after context cancellation")
	}

	if !strings.Contains(out.String(), "\x1b[?25h") {
		t.Error("cursor not restored on the abort path")
	}
}

func TestTerminal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _ := term("1\n")
	_, err := p.Select(ctx, "Which?", Choices("a"), "a")
	if !rferrors.IsAbort(err) {
		t.Errorf("cancelled context should abort, got %v", err)
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		value, want string
	}{
		{"streaming", "Streaming"},
		{"vector-db", "Vector Db"},
		{"google_search", "Google Search"},
	}
	for _, tt := range tests {
		if got := labelFor(tt.value); got != tt.want {
			t.Errorf("labelFor(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
