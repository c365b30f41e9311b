// Package pipeline runs the two-task word-count pipeline.
//
// A producer task streams the source file in bounded chunks over an OS pipe
// (channel A) to a consumer task, which threads the word-count boundary
// state across chunks and returns the total over a second pipe (channel B)
// as a single native-endian int64. The runner spawns both tasks, hands each
// one exactly the pipe ends it needs, awaits the result, and joins both
// tasks before reporting.
//
// Closing the write end of a pipe is the only end-of-stream signal in the
// protocol. Every task therefore closes its ends on all return paths,
// including failure paths, so the peer is never left blocked.
package pipeline
