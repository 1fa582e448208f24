package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/talmud"
)

// Ensure LoggingDataWriter implements talmud.DataWriter.
var _ talmud.DataWriter = (*LoggingDataWriter)(nil)

// LoggingDataWriter wraps a DataWriter with debug logging.
type LoggingDataWriter struct {
	next   talmud.DataWriter
	logger *slog.Logger
}

// NewLoggingDataWriter creates a new LoggingDataWriter.
func NewLoggingDataWriter(next talmud.DataWriter, logger *slog.Logger) *LoggingDataWriter {
	return &LoggingDataWriter{next: next, logger: logger}
}

// WriteData delegates to the wrapped writer and logs the write.
func (w *LoggingDataWriter) WriteData(ctx context.Context, data *talmud.Data) (err error) {
	defer func(begin time.Time) {
		var n int
		if data != nil {
			n = len(data.Response)
		}
		w.logger.Info("data write",
			"response_bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteData(ctx, data)
}
