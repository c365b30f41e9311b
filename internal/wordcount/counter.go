package wordcount

// State carries the single bit of memory that survives between chunks:
// whether the stream was inside a word when the previous chunk ended. The
// zero value is the correct starting state for a fresh stream.
type State struct {
	inWord bool
}

// InWord reports whether the stream ended inside a word after the last
// counted chunk.
func (s State) InWord() bool {
	return s.inWord
}

// IsSpace reports whether b is whitespace: space, horizontal tab, newline,
// carriage return, form feed, or vertical tab. This matches isspace in the
// C locale and intentionally ignores multi-byte encodings.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Count returns the number of words that start within buf, where a word is a
// maximal run of non-whitespace bytes. st must be the state produced by the
// previous call for the same stream; a run that continues a word begun in an
// earlier chunk is not counted again. An empty buffer returns 0 and leaves
// the state untouched.
func Count(buf []byte, st *State) int64 {
	var count int64
	for _, b := range buf {
		if IsSpace(b) {
			st.inWord = false
		} else if !st.inWord {
			count++
			st.inWord = true
		}
	}
	return count
}
