package talmud

import "context"

// Response is a manually curated answer to a topic. Citations in each answer
// are zero-based indices into References.
type Response struct {
	TopicID    string   `json:"topic_id"`
	References []string `json:"references"`
	Answer     []Answer `json:"answer"`
}

// Answer is one sentence-level fragment of a response.
type Answer struct {
	Text      string `json:"text"`
	Citations []int  `json:"citations,omitempty"`
}

// ResponseService represents a service for looking up curated responses.
type ResponseService interface {
	// FindResponseByTopicID returns the first response recorded for the topic.
	// Returns ENOTFOUND if no response matches.
	FindResponseByTopicID(ctx context.Context, topicID string) (*Response, error)
}
