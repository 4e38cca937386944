// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max attempts,
// initial delay, and maximum delay. It is used for Orgo API calls and SSH
// connection establishment, where failures are usually transient.
package retry
