package pipe

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// WriteAll writes all of p to w, looping over short writes and retrying
// writes interrupted by a signal. From the caller's perspective the send is
// atomic: it either accepts every byte or fails with a non-retryable
// transport error.
func WriteAll(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if n > 0 {
			p = p[n:]
		}
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("write: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("write: %w", io.ErrShortWrite)
		}
	}
	return nil
}

// ReadUpTo reads from r into p until p is full or the stream ends, retrying
// reads interrupted by a signal. It returns the number of bytes obtained,
// which is len(p) unless end-of-stream truncated it. End-of-stream is never
// surfaced as an error; the caller detects it from the byte count.
func ReadUpTo(r io.Reader, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := r.Read(p[total:])
		total += n
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, fmt.Errorf("read: %w", err)
		}
	}
	return total, nil
}
