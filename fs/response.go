package fs

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/talmud"
)

// Ensure ResponseService implements talmud.ResponseService at compile time.
var _ talmud.ResponseService = (*ResponseService)(nil)

// ResponseService reads curated responses from a JSON-lines file, one
// talmud.Response per line.
type ResponseService struct {
	path string
}

// NewResponseService creates a new ResponseService reading from path.
func NewResponseService(path string) *ResponseService {
	return &ResponseService{path: path}
}

// FindResponseByTopicID returns the first response whose topic_id equals topicID.
// Blank lines are skipped; a line that is not valid JSON returns EINVALID.
func (s *ResponseService) FindResponseByTopicID(ctx context.Context, topicID string) (*talmud.Response, error) {
	var found *talmud.Response
	err := scanLines(ctx, s.path, func(n int, line string) (bool, error) {
		if strings.TrimSpace(line) == "" {
			return true, nil
		}
		var r talmud.Response
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return false, talmud.Errorf(talmud.EINVALID, "%s:%d: invalid response record: %s", s.path, n, err)
		}
		if r.TopicID == topicID {
			found = &r
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, talmud.Errorf(talmud.ENOTFOUND, "did not find topic %q", topicID)
	}
	return found, nil
}
