package pipeline

import (
	"encoding/binary"
	"log/slog"
	"os"

	"wordpipe/internal/logging"
	"wordpipe/internal/pipe"
	"wordpipe/internal/wordcount"
)

// resultSize is the width of the channel B payload: one int64 in native
// byte order. Both pipe ends ship in the same binary, so the layout does not
// need to be portable across architectures.
const resultSize = 8

// runConsumer drains channel A in bounded reads, counting words with the
// boundary state threaded across chunks, and delivers the total over channel
// B. It owns the read end of A and the write end of B and closes both before
// returning.
//
// If the stream ends before a single byte arrives, the consumer closes
// channel B without a payload and reports ErrNoData. Sending a zero instead
// would make a failed-open source indistinguishable from a whitespace-only
// file.
func runConsumer(r, w *os.File, chunkSize int, logger *slog.Logger) error {
	defer r.Close()
	defer w.Close()

	var (
		st    wordcount.State
		total int64
		seen  bool
	)
	buf := make([]byte, chunkSize)
	for {
		n, err := pipe.ReadUpTo(r, buf)
		if err != nil {
			return Wrap(ErrTransport, "consumer", "receive chunk", err)
		}
		if n == 0 {
			break
		}
		seen = true
		total += wordcount.Count(buf[:n], &st)
	}

	if !seen {
		return Wrap(ErrNoData, "consumer", "empty stream", nil)
	}

	logger.Debug("consumer counted stream", logging.Int64("words", total))

	wire := make([]byte, resultSize)
	binary.NativeEndian.PutUint64(wire, uint64(total))
	if err := pipe.WriteAll(w, wire); err != nil {
		return Wrap(ErrTransport, "consumer", "send result", err)
	}
	return nil
}
