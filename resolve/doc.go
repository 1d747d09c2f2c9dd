// Package resolve turns a partially-specified app configuration into a
// complete generation plan.
//
// Resolution is an ordered pipeline of named steps, each with a
// declarative applies-if predicate. For every unresolved field the same
// cascade applies: explicit input wins, then (in batch mode) a stored
// preference when still valid, then a hardcoded default; interactive runs
// prompt and write the answer back to the preference store. Credentials
// follow the cascade minus persistence.
//
// The pipeline is executed as a flowgraph: community and llamapack
// template selections short-circuit the full-app steps. Any step error
// aborts the whole run; there are no partial results.
package resolve
