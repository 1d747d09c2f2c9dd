// Package errors provides the CLI error taxonomy with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//
// Sentinel errors for the failure paths of the resolver:
//   - ErrAborted: Operator cancelled a prompt
//   - ErrInvalidURL: Malformed website URL entered
//   - ErrUnsupportedPlatform: Native dialog requested on an unsupported OS
//   - ErrUnsupportedFile: File extension the generator cannot ingest
//   - ErrPathNotFound: Referenced local path does not exist
//   - ErrPickerFailed: Native dialog script invocation failed
//
// Every failure here is fatal by policy: the tool is one-shot, so errors are
// reported once and the operator re-runs it. Callers decide how to terminate:
//
//	cfg, err := resolver.Resolve(ctx, input)
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(errors.ExitCode(err))
//	}
//
// Predicates classify errors without string matching:
//
//	if errors.IsAbort(err) {
//	    // restore terminal state, exit 130
//	}
package errors
