package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/talmud"
)

// Ensure LoggingResponseService implements talmud.ResponseService.
var _ talmud.ResponseService = (*LoggingResponseService)(nil)

// LoggingResponseService wraps a ResponseService with debug logging.
type LoggingResponseService struct {
	next   talmud.ResponseService
	logger *slog.Logger
}

// NewLoggingResponseService creates a new LoggingResponseService.
func NewLoggingResponseService(next talmud.ResponseService, logger *slog.Logger) *LoggingResponseService {
	return &LoggingResponseService{next: next, logger: logger}
}

// FindResponseByTopicID delegates to the wrapped service and logs the lookup
// with the number of answers and references found.
func (s *LoggingResponseService) FindResponseByTopicID(ctx context.Context, topicID string) (r *talmud.Response, err error) {
	defer func(begin time.Time) {
		var answers, refs int
		if r != nil {
			answers, refs = len(r.Answer), len(r.References)
		}
		s.logger.Info("response lookup",
			"topic", topicID,
			"answers", answers,
			"references", refs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindResponseByTopicID(ctx, topicID)
}
