package pipeline

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"wordpipe/internal/config"
	"wordpipe/internal/logging"
	"wordpipe/internal/pipe"
)

// Result describes a completed pipeline run.
type Result struct {
	Words    int64
	Bytes    int64
	Chunks   int
	Duration time.Duration
}

// Runner wires the producer and consumer tasks together and reports the
// final count or the failure that prevented one.
type Runner struct {
	chunkSize int
	logger    *slog.Logger
}

// New constructs a runner using the configured chunk size.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	chunkSize := config.DefaultChunkSize
	if cfg != nil && cfg.Pipeline.ChunkSize > 0 {
		chunkSize = cfg.Pipeline.ChunkSize
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{chunkSize: chunkSize, logger: logger}
}

// Run streams the file at path through the producer and consumer tasks and
// returns the word count. The two tasks run concurrently and communicate
// only through the pipe pair; the runner holds no channel end except the
// read side of channel B. Both tasks are always joined before Run returns,
// regardless of outcome.
func (r *Runner) Run(path string) (*Result, error) {
	start := time.Now()

	ar, aw, err := os.Pipe()
	if err != nil {
		return nil, Wrap(ErrTransport, "runner", "create data pipe", err)
	}
	br, bw, err := os.Pipe()
	if err != nil {
		ar.Close()
		aw.Close()
		return nil, Wrap(ErrTransport, "runner", "create result pipe", err)
	}

	var (
		wg      sync.WaitGroup
		stats   producerStats
		prodErr error
		consErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, prodErr = runProducer(path, aw, r.chunkSize, r.logger)
	}()
	go func() {
		defer wg.Done()
		consErr = runConsumer(ar, bw, r.chunkSize, r.logger)
	}()

	r.logger.Debug("pipeline spawned",
		logging.String("path", path),
		logging.Int("chunk_size", r.chunkSize))

	// Each task holds exactly the ends it uses and closes them itself; the
	// runner only awaits the result on channel B.
	wire := make([]byte, resultSize)
	n, readErr := pipe.ReadUpTo(br, wire)
	br.Close()
	wg.Wait()

	if err := resolveOutcome(n, readErr, prodErr, consErr); err != nil {
		return nil, err
	}

	result := &Result{
		Words:    int64(binary.NativeEndian.Uint64(wire)),
		Bytes:    stats.bytes,
		Chunks:   stats.chunks,
		Duration: time.Since(start),
	}
	r.logger.Info("count complete",
		logging.String("path", path),
		logging.Int64("words", result.Words),
		logging.Int64("bytes", result.Bytes),
		logging.Int("chunks", result.Chunks),
		logging.Duration("duration", result.Duration))
	return result, nil
}

// resolveOutcome classifies a finished run from the channel B read and the
// task errors. Task failures outrank the wire-level view: a producer that
// could not open the source produces the same empty stream as an empty file,
// and the open failure is the more truthful report.
func resolveOutcome(n int, readErr, prodErr, consErr error) error {
	if prodErr != nil {
		return prodErr
	}
	if consErr != nil && !errors.Is(consErr, ErrNoData) {
		return consErr
	}
	if readErr != nil {
		return Wrap(ErrTransport, "runner", "receive result", readErr)
	}
	switch {
	case n == 0:
		if consErr != nil {
			return consErr
		}
		return Wrap(ErrNoData, "runner", "result channel closed unsent", nil)
	case n < resultSize:
		return fmt.Errorf("%w: runner: received %d of %d result bytes", ErrTruncatedResult, n, resultSize)
	}
	return nil
}
