// Package orgo provides a client for the Orgo cloud-VM API.
//
// Orgo exposes virtual desktop machines ("computers") over a REST API:
// create and destroy computers, execute shell commands on them, and
// capture screenshots of their display. No official Go SDK exists, so
// this package speaks the HTTP API directly, in the same wrapper shape
// used for other providers: a narrow manager interface, a real client,
// and a func-field mock for tests.
//
// # Architecture
//
//   - client.go: HTTP client, request plumbing, computer lifecycle and exec
//   - session.go: Session handle binding a client to one computer
//   - errors.go: API error classification for retry decisions
//   - mock.go: mock manager for tests
//
// Idempotent reads (GetComputer, Screenshot) are retried with exponential
// backoff on transient failures. Exec is never retried: remote commands
// may have side effects, and the sequencer treats a non-zero exit status
// as data rather than a transport failure.
package orgo
