// Package pipe provides the reliable transfer helpers used on both wordpipe
// channels.
//
// Kernel pipes may accept or deliver fewer bytes than requested per call and
// may fail transiently with EINTR when a signal lands mid-operation. WriteAll
// and ReadUpTo absorb both conditions so callers see all-or-nothing sends and
// all-or-EOF receives, which removes an entire class of truncation bugs from
// the producer/consumer protocol.
package pipe
