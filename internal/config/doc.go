// Package config defines the configuration model for vault VM setup.
//
// The [Config] struct is the canonical representation of a setup run:
// computer identity and size, repository to clone, git author identity,
// and which optional stages (SSH key, browser-use, example script,
// artifact upload) run. It is loaded from a YAML file or produced by
// the interactive wizard. Secrets never live in the file; they come
// from the environment via [LoadCredentials].
package config
