package talmud

// Citation is a citation link found in a formatted response.
type Citation struct {
	// Number is the link text, the one-based citation number.
	Number string

	// URL is the link target.
	URL string

	// DocID is the reference the link was built from: the text after
	// CitationURL with "%23" turned back into "#". Empty for foreign links.
	DocID string
}

// CitationExtractor finds the citation links in a formatted response.
type CitationExtractor interface {
	// ExtractCitations returns the distinct citations of html in the order
	// they first appear.
	ExtractCitations(html string) ([]*Citation, error)
}
