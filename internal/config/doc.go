// Package config loads and validates wordpipe configuration.
//
// Configuration lives in a TOML file, resolved from an explicit --config
// path, ~/.config/wordpipe/config.toml, or a project-local wordpipe.toml, in
// that order. Absent files are not an error: defaults apply and path fields
// are expanded and normalized either way.
package config
