package talmud

import "context"

// Data is the document read by the front-end. Only Query and Response are
// derived from input; the remaining fields hold fixed placeholder values.
type Data struct {
	Query           string   `json:"query"`
	Response        string   `json:"response"`
	LeftCommentary  []string `json:"leftCommentary"`
	RightCommentary []string `json:"rightCommentary"`
	References      []string `json:"references"`
}

// NewData returns a Data for the given query and formatted response with the
// placeholder commentary and reference fields filled in.
func NewData(query, response string) *Data {
	return &Data{
		Query:           query,
		Response:        response,
		LeftCommentary:  []string{"Commentary 1", "Commentary 2"},
		RightCommentary: []string{"Authoritative note 1", "Authoritative note 2"},
		References:      []string{"Source A", "Source B"},
	}
}

// LoadData looks up the query and the curated response for a topic and
// returns the document pairing them. The query is looked up first, so a topic
// missing from both sources reports the topic list's ENOTFOUND.
func LoadData(ctx context.Context, topics TopicService, responses ResponseService, id string) (*Data, error) {
	topic, err := topics.FindTopicByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r, err := responses.FindResponseByTopicID(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := FormatResponse(r)
	if err != nil {
		return nil, err
	}

	return NewData(topic.Query, text), nil
}

// DataWriter writes the front-end data document.
type DataWriter interface {
	// WriteData writes data, replacing any existing document.
	WriteData(ctx context.Context, data *Data) error
}
