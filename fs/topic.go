package fs

import (
	"context"
	"strings"

	"github.com/fwojciec/talmud"
)

// Ensure TopicService implements talmud.TopicService at compile time.
var _ talmud.TopicService = (*TopicService)(nil)

// TopicService reads topics from a tab-separated file with lines of the form
// "<id>\t<query>".
type TopicService struct {
	path string
}

// NewTopicService creates a new TopicService reading from path.
func NewTopicService(path string) *TopicService {
	return &TopicService{path: path}
}

// FindTopicByID returns the first topic whose identifier equals id.
func (s *TopicService) FindTopicByID(ctx context.Context, id string) (*talmud.Topic, error) {
	var found *talmud.Topic
	err := scanLines(ctx, s.path, func(_ int, line string) (bool, error) {
		topic, ok := ParseTopic(line)
		if ok && topic.ID == id {
			found = topic
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, talmud.Errorf(talmud.ENOTFOUND, "did not find topic %q", id)
	}
	return found, nil
}

// FindTopics returns all topics in file order.
func (s *TopicService) FindTopics(ctx context.Context) ([]*talmud.Topic, error) {
	var topics []*talmud.Topic
	err := scanLines(ctx, s.path, func(_ int, line string) (bool, error) {
		if topic, ok := ParseTopic(line); ok {
			topics = append(topics, topic)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return topics, nil
}

// ParseTopic splits a topic line at its first tab. The identifier is kept
// verbatim and the query is trimmed. Lines without a tab are not topics.
func ParseTopic(line string) (*talmud.Topic, bool) {
	id, query, ok := strings.Cut(line, "\t")
	if !ok {
		return nil, false
	}
	return &talmud.Topic{ID: id, Query: strings.TrimSpace(query)}, true
}
