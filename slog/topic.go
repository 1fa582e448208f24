// Package slog provides logging decorators for talmud services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/talmud"
)

// Ensure LoggingTopicService implements talmud.TopicService.
var _ talmud.TopicService = (*LoggingTopicService)(nil)

// LoggingTopicService wraps a TopicService with debug logging.
type LoggingTopicService struct {
	next   talmud.TopicService
	logger *slog.Logger
}

// NewLoggingTopicService creates a new LoggingTopicService.
func NewLoggingTopicService(next talmud.TopicService, logger *slog.Logger) *LoggingTopicService {
	return &LoggingTopicService{next: next, logger: logger}
}

// FindTopicByID delegates to the wrapped service and logs the lookup.
func (s *LoggingTopicService) FindTopicByID(ctx context.Context, id string) (topic *talmud.Topic, err error) {
	defer func(begin time.Time) {
		s.logger.Info("topic lookup",
			"topic", id,
			"found", topic != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTopicByID(ctx, id)
}

// FindTopics delegates to the wrapped service and logs the count.
func (s *LoggingTopicService) FindTopics(ctx context.Context) (topics []*talmud.Topic, err error) {
	defer func(begin time.Time) {
		s.logger.Info("topic listing",
			"count", len(topics),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTopics(ctx)
}
