package mock

import (
	"context"

	"github.com/fwojciec/talmud"
)

var _ talmud.TopicService = (*TopicService)(nil)

// TopicService is a mock implementation of talmud.TopicService.
type TopicService struct {
	FindTopicByIDFn func(ctx context.Context, id string) (*talmud.Topic, error)
	FindTopicsFn    func(ctx context.Context) ([]*talmud.Topic, error)
}

func (s *TopicService) FindTopicByID(ctx context.Context, id string) (*talmud.Topic, error) {
	return s.FindTopicByIDFn(ctx, id)
}

func (s *TopicService) FindTopics(ctx context.Context) ([]*talmud.Topic, error) {
	return s.FindTopicsFn(ctx)
}
