// Package prompt provides the interactive terminal questions of the
// resolver: single-select, multi-select, free-text, and yes/no.
//
// Prompts block until the operator answers. Closing stdin or interrupting a
// prompt surfaces as errors.ErrAborted after restoring terminal state; the
// caller terminates the run, never retries.
//
// Script is a canned Prompter for tests.
package prompt
