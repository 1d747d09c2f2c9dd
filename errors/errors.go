package errors

import "errors"

// Common resolver errors with actionable guidance.
var (
	// ErrAborted indicates the operator cancelled a prompt.
	ErrAborted = errors.New("aborted")

	// ErrInvalidURL indicates a malformed or unsupported URL was entered.
	ErrInvalidURL = errors.New("invalid url")

	// ErrUnsupportedPlatform indicates a native dialog was requested on an
	// OS that has no dialog support.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnsupportedFile indicates the selected file has an extension the
	// generator cannot ingest.
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrPathNotFound indicates a referenced local path does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrPickerFailed indicates the native file dialog script failed.
	ErrPickerFailed = errors.New("file dialog failed")

	// ErrCatalogEmpty indicates a remote catalog listing returned nothing
	// to choose from.
	ErrCatalogEmpty = errors.New("catalog is empty")

	// ErrInvalidFlag indicates a flag carried a value outside its enum.
	ErrInvalidFlag = errors.New("invalid flag value")
)
