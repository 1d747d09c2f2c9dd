// Package picker invokes the host's native file and folder dialogs:
// osascript on macOS, a Windows Forms dialog via PowerShell on Windows.
// Other platforms have no dialog support and fail with a typed error; the
// operator passes the path directly instead.
//
// Dialog invocation goes through a Runner interface so tests never open a
// real dialog.
package picker
