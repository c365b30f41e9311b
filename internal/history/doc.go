// Package history persists one record per successful count in a SQLite
// database under the configured data directory.
//
// It follows the store layout used elsewhere in the codebase: an embedded
// schema applied on first open, a schema_version guard, WAL journaling with
// a busy timeout, and a file lock serializing writers so concurrent wordpipe
// invocations do not race each other.
package history
