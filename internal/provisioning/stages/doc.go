// Package stages contains the concrete setup stages executed against a
// provisioned computer, in the order returned by [ForConfig]: system
// packages, git identity, optional SSH key, repository clone, repository
// dependencies, browser-use install, example script, screenshot, and
// optional artifact upload.
package stages
