package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceUnavailable indicates the byte source could not be opened.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrSourceRead indicates the source failed mid-stream after opening.
	ErrSourceRead = errors.New("source read failure")
	// ErrTransport indicates a non-retryable failure on a pipe operation.
	ErrTransport = errors.New("transport failure")
	// ErrNoData indicates the stream ended before a single chunk arrived, so
	// no count was produced.
	ErrNoData = errors.New("no data received")
	// ErrTruncatedResult indicates channel B delivered fewer bytes than the
	// result protocol requires.
	ErrTruncatedResult = errors.New("truncated result")
)

// Wrap builds an error message that includes task context while tagging it
// with the provided marker for outcome classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, task, operation string, err error) error {
	detail := buildDetail(task, operation)
	if marker == nil {
		marker = ErrTransport
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(task, operation string) string {
	parts := make([]string, 0, 2)
	if task = strings.TrimSpace(task); task != "" {
		parts = append(parts, task)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
