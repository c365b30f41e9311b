package pipeline

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"wordpipe/internal/logging"
	"wordpipe/internal/pipe"
)

type producerStats struct {
	bytes  int64
	chunks int
}

// runProducer streams the source file into w in bounded chunks. It owns the
// write end of channel A and closes it on every return path: that close is
// the consumer's only end-of-stream signal, so it must happen even when the
// source cannot be opened or fails mid-read.
func runProducer(path string, w *os.File, chunkSize int, logger *slog.Logger) (producerStats, error) {
	defer w.Close()

	var stats producerStats

	f, err := os.Open(path)
	if err != nil {
		// Closing the untouched pipe presents the consumer with an empty
		// stream. The runner reports the open failure, not the empty read.
		return stats, Wrap(ErrSourceUnavailable, "producer", "open source", err)
	}
	defer f.Close()

	logger.Debug("producer streaming source",
		logging.String("path", path),
		logging.Int("chunk_size", chunkSize))

	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if werr := pipe.WriteAll(w, buf[:n]); werr != nil {
				return stats, Wrap(ErrTransport, "producer", "send chunk", werr)
			}
			stats.bytes += int64(n)
			stats.chunks++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return stats, Wrap(ErrSourceRead, "producer", "read source", err)
		}
	}

	logger.Debug("producer finished",
		logging.Int64("bytes", stats.bytes),
		logging.Int("chunks", stats.chunks))
	return stats, nil
}
