// Package logging constructs the slog loggers used across wordpipe.
//
// Two output formats are supported: a human-oriented console format with
// optional color when stdout is a terminal, and line-delimited JSON for
// machine consumption. Log output can fan out to stdout/stderr and files.
package logging
