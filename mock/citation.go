package mock

import "github.com/fwojciec/talmud"

var _ talmud.CitationExtractor = (*CitationExtractor)(nil)

// CitationExtractor is a mock implementation of talmud.CitationExtractor.
type CitationExtractor struct {
	ExtractCitationsFn func(html string) ([]*talmud.Citation, error)
}

func (e *CitationExtractor) ExtractCitations(html string) ([]*talmud.Citation, error) {
	return e.ExtractCitationsFn(html)
}
