package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DLTRedriver republishes dead-lettered messages.
type DLTRedriver interface {
	Redrive(ctx context.Context, topic string, limit int) (int, error)
}

// RunRedriveDLT moves dead-lettered messages of topic back to their original topic.
// topic may name the source topic or its dead-letter topic. A limit of zero redrives
// every message available.
func RunRedriveDLT(
	ctx context.Context,
	redriver DLTRedriver,
	logger *slog.Logger,
	writer io.Writer,
	topic string,
	limit int,
	format string,
) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return fmt.Errorf("topic is required")
	}
	if limit < 0 {
		return fmt.Errorf("limit must be zero or a positive number, got: %d", limit)
	}

	count, err := redriver.Redrive(ctx, topic, limit)
	if err != nil {
		logger.Error("redrive interrupted", slog.String("topic", topic), slog.Int("redriven", count))
		return fmt.Errorf("failed to redrive %s: %w", topic, err)
	}

	logger.Info("redrive completed", slog.String("topic", topic), slog.Int("redriven", count))

	return writeResult(
		writer,
		format,
		fmt.Sprintf("Redrove %d message(s) from the dead-letter topic of %s", count, topic),
		map[string]any{"topic": topic, "redriven": count},
	)
}
