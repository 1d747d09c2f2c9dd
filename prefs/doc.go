// Package prefs is the preference side-channel of the resolver: a key-value
// store remembering the last answer given for each resolvable field.
//
// Lifecycle: loaded when the CLI starts, read as the fallback default
// whenever a field is unset in batch mode, and written on every interactive
// answer, an implicit "last answer wins" contract across invocations.
//
//	store, _ := prefs.NewYAMLStore()
//	if v, ok := store.Get(prefs.KeyFramework); ok {
//	    // last run's framework choice
//	}
//
// Credentials are never written here.
package prefs
