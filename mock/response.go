package mock

import (
	"context"

	"github.com/fwojciec/talmud"
)

var _ talmud.ResponseService = (*ResponseService)(nil)

// ResponseService is a mock implementation of talmud.ResponseService.
type ResponseService struct {
	FindResponseByTopicIDFn func(ctx context.Context, topicID string) (*talmud.Response, error)
}

func (s *ResponseService) FindResponseByTopicID(ctx context.Context, topicID string) (*talmud.Response, error) {
	return s.FindResponseByTopicIDFn(ctx, topicID)
}
