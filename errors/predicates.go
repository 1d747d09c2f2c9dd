package errors

import "errors"

// IsAbort checks if an error came from the operator cancelling a prompt.
func IsAbort(err error) bool {
	return errors.Is(err, ErrAborted)
}

// IsValidation checks if an error is a user-input validation failure:
// a malformed URL, an unsupported file extension, a missing path, or a
// flag value outside its enum.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrUnsupportedFile) ||
		errors.Is(err, ErrPathNotFound) ||
		errors.Is(err, ErrInvalidFlag)
}

// IsPlatform checks if an error is a platform-support failure.
func IsPlatform(err error) bool {
	return errors.Is(err, ErrUnsupportedPlatform)
}

// IsPicker checks if an error came from the native file dialog script.
func IsPicker(err error) bool {
	return errors.Is(err, ErrPickerFailed)
}
