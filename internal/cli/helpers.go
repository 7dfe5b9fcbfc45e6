package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrInterrupted is returned when a session is stopped by a signal or by
// cancellation before the record is complete. Nothing is persisted.
var ErrInterrupted = errors.New("interview interrupted")

func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> "+format+"\n", args...)
}

func handleInterviewError(ctx context.Context, err error, logger *slog.Logger) error {
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		logger.Info("interview cancelled", "err", err)
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if errors.Is(err, io.EOF) {
		logger.Info("input exhausted before the interview finished", "err", err)
		return fmt.Errorf("%w: input ended early", ErrInterrupted)
	}
	logger.Error("interview failed", "err", err)
	return err
}
