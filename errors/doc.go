// Package errors provides the structured error type shared by funkit
// packages. Every error carries a machine-readable code, a human-readable
// message, optional details, and an optional cause.
package errors
