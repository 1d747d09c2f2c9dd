// Package models catalogs the chat and embedding model identifiers offered
// during resolution, with static per-provider tables and an optional live
// listing from the OpenAI API when a key is available.
package models
