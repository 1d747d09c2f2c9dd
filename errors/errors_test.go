package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{
		Err:        ErrInvalidURL,
		Message:    "Bad URL.",
		Details:    "scheme must be http or https",
		Suggestion: "Fix it and re-run.",
	}

	got := err.Error()
	if !strings.Contains(got, "Bad URL.") {
		t.Errorf("missing message in %q", got)
	}
	if !strings.Contains(got, "scheme must be http or https") {
		t.Errorf("missing details in %q", got)
	}
	if !strings.Contains(got, "Fix it and re-run.") {
		t.Errorf("missing suggestion in %q", got)
	}
}

func TestCLIError_Unwrap(t *testing.T) {
	err := NewInvalidURLError("ftp://x.com")
	if !errors.Is(err, ErrInvalidURL) {
		t.Error("should unwrap to ErrInvalidURL")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"abort", NewAbortedError(), IsAbort},
		{"invalid url", NewInvalidURLError("x"), IsValidation},
		{"unsupported file", NewUnsupportedFileError("a.exe", []string{".pdf"}), IsValidation},
		{"path not found", NewPathNotFoundError("/nope"), IsValidation},
		{"platform", NewUnsupportedPlatformError("linux"), IsPlatform},
		{"picker", NewPickerError(fmt.Errorf("boom")), IsPicker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.want(tt.err) {
				t.Errorf("predicate did not match %v", tt.err)
			}
		})
	}
}

func TestPredicates_DontCrossMatch(t *testing.T) {
	if IsAbort(NewInvalidURLError("x")) {
		t.Error("validation error should not look like an abort")
	}
	if IsValidation(NewAbortedError()) {
		t.Error("abort should not look like a validation failure")
	}
	if IsPlatform(errors.New("plain")) {
		t.Error("plain error should not match platform predicate")
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", got)
	}
	if got := ExitCode(NewAbortedError()); got != 130 {
		t.Errorf("ExitCode(abort) = %d, want 130", got)
	}
	if got := ExitCode(NewPathNotFoundError("/nope")); got != 2 {
		t.Errorf("ExitCode(validation) = %d, want 2", got)
	}
	if got := ExitCode(NewInvalidFlagError("engine", "bogus", []string{"simple", "context"})); got != 2 {
		t.Errorf("ExitCode(invalid flag) = %d, want 2", got)
	}
	if got := ExitCode(NewPickerError(errors.New("boom"))); got != 1 {
		t.Errorf("ExitCode(picker) = %d, want 1", got)
	}
}
