// Package config defines the generation plan assembled by the resolver.
//
// Config is the accumulating output: fields start unset and are filled from
// direct input, stored preferences, or context-sensitive defaults. DataSource
// is a tagged variant whose Config shape depends on its Type. The resolver
// exclusively owns a Config while resolving; nothing here is safe for
// concurrent mutation, and nothing needs to be.
package config
