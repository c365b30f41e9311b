// Package main hosts the wordpipe CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into pipeline
// runs, history queries, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: the counting, transfer, and persistence logic
// lives in the internal packages and is surfaced here through dedicated
// commands and flags.
package main
