package errors

import (
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewAbortedError creates the error returned when the operator cancels a
// prompt. The whole run stops; there is no partial result.
func NewAbortedError() error {
	return &CLIError{
		Err:     ErrAborted,
		Message: "Cancelled.",
	}
}

// NewInvalidURLError creates an error for a malformed website URL.
func NewInvalidURLError(raw string) error {
	return &CLIError{
		Err:        ErrInvalidURL,
		Message:    fmt.Sprintf("%q is not a valid URL.", raw),
		Suggestion: "Provide a full http:// or https:// URL and re-run.",
	}
}

// NewUnsupportedPlatformError creates an error for native dialogs requested
// on an OS without dialog support.
func NewUnsupportedPlatformError(goos string) error {
	return &CLIError{
		Err:        ErrUnsupportedPlatform,
		Message:    fmt.Sprintf("Native file dialogs are not supported on %s.", goos),
		Suggestion: "Pass the data path directly with --files instead.",
	}
}

// NewUnsupportedFileError creates an error for a file extension the
// generator cannot ingest.
func NewUnsupportedFileError(path string, supported []string) error {
	return &CLIError{
		Err:        ErrUnsupportedFile,
		Message:    fmt.Sprintf("Cannot ingest %s.", path),
		Details:    "Supported file types: " + strings.Join(supported, ", "),
		Suggestion: "Choose a supported file and re-run.",
	}
}

// NewPathNotFoundError creates an error for a referenced local path that
// does not exist.
func NewPathNotFoundError(path string) error {
	return &CLIError{
		Err:        ErrPathNotFound,
		Message:    fmt.Sprintf("%s does not exist.", path),
		Suggestion: "Check the path and re-run.",
	}
}

// NewPickerError wraps a failure from the native file dialog script.
func NewPickerError(err error) error {
	return &CLIError{
		Err:        ErrPickerFailed,
		Message:    "Could not open the file dialog.",
		Details:    err.Error(),
		Suggestion: "Try again, or pass the data path directly with --files.",
	}
}

// NewInvalidFlagError creates an error for a flag value outside its enum.
func NewInvalidFlagError(flag, value string, allowed []string) error {
	return &CLIError{
		Err:        ErrInvalidFlag,
		Message:    fmt.Sprintf("%q is not a valid value for --%s.", value, flag),
		Details:    "Allowed values: " + strings.Join(allowed, ", "),
		Suggestion: fmt.Sprintf("Re-run with one of the allowed --%s values.", flag),
	}
}

// ExitCode maps an error to the process exit status. Operator aborts use
// the conventional interrupt status; validation failures get their own code
// so scripts can tell bad input from runtime failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsAbort(err) {
		return 130
	}
	if IsValidation(err) {
		return 2
	}
	return 1
}
