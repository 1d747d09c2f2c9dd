// Package catalog holds the static availability data behind the prompts:
// which templates exist, which frameworks each template offers, which vector
// stores exist per template language, the agent tool descriptors, and the
// ingestible file extensions.
package catalog
