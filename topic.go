package talmud

import "context"

// Topic is a single entry of the topic list: an identifier and its query text.
type Topic struct {
	ID    string `json:"id"`
	Query string `json:"query"`
}

// TopicService represents a service for looking up topics.
type TopicService interface {
	// FindTopicByID returns the first topic with the given identifier.
	// Returns ENOTFOUND if no topic matches.
	FindTopicByID(ctx context.Context, id string) (*Topic, error)

	// FindTopics returns all topics in source order.
	FindTopics(ctx context.Context) ([]*Topic, error)
}
