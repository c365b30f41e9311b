// Package wordcount implements the streaming word counter at the heart of
// wordpipe.
//
// Count is a pure function over a byte buffer plus a small boundary state
// that records whether the previous chunk ended inside a word. Threading the
// state through successive calls makes the total independent of how the
// stream was chunked: a word split across two buffers is counted exactly
// once, in the buffer that holds its first byte.
//
// Whitespace classification is byte-based ASCII, matching the C locale, and
// deliberately not Unicode-aware.
package wordcount
