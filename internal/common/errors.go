// Package common defines the sentinel errors shared across the exporter.
// Callers should use errors.Is to match these values; call sites wrap them
// with fmt.Errorf to attach detail such as the server-provided message.
package common

import "errors"

var (
	// ErrAuth covers rejected credentials and malformed sign-in responses.
	ErrAuth = errors.New("authorization failed")

	// ErrFetch covers non-2xx responses from data endpoints.
	ErrFetch = errors.New("fetch failed")

	// ErrTransport covers network-level failures (timeouts, resets).
	ErrTransport = errors.New("transport error")

	// ErrConfig covers invalid flags and bad credential files.
	ErrConfig = errors.New("invalid configuration")
)
