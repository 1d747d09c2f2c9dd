// Package httpx provides the shared retrying HTTP transport used by the
// remote catalog and model-listing clients.
package httpx
