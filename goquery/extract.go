// Package goquery extracts citation links from formatted responses.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/talmud"
)

// Ensure CitationExtractor implements talmud.CitationExtractor at compile time.
var _ talmud.CitationExtractor = (*CitationExtractor)(nil)

// CitationExtractor parses formatted responses with goquery.
type CitationExtractor struct{}

// NewCitationExtractor creates a new CitationExtractor.
func NewCitationExtractor() *CitationExtractor {
	return &CitationExtractor{}
}

// ExtractCitations returns the anchors of html deduplicated by href, keeping
// the first occurrence. Anchors without an HTTP target are skipped.
func (e *CitationExtractor) ExtractCitations(html string) ([]*talmud.Citation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, talmud.Errorf(talmud.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var citations []*talmud.Citation

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)

		var docID string
		if rest, ok := strings.CutPrefix(href, talmud.CitationURL); ok {
			// References are appended verbatim apart from '#', so no query
			// decoding applies here.
			docID = strings.ReplaceAll(rest, "%23", "#")
		} else if !isHTTP(href) {
			return
		}

		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}

		citations = append(citations, &talmud.Citation{
			Number: strings.TrimSpace(sel.Text()),
			URL:    href,
			DocID:  docID,
		})
	})

	return citations, nil
}

func isHTTP(href string) bool {
	u, err := url.Parse(href)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
