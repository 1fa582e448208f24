package talmud

import (
	"strconv"
	"strings"
)

// CitationURL is the document viewer that citation links point at. The
// reference's document ID is appended as the trec-id parameter.
const CitationURL = "https://chatnoir-webcontent.chatnoir.eu/?index=msmarco-v2.1-segmented&trec-id="

// CitationLink renders the citation of reference ref at zero-based index i as
// an HTML anchor. The link text is the one-based citation number.
func CitationLink(ref string, i int) string {
	docID := strings.ReplaceAll(ref, "#", "%23")
	return `<a href="` + CitationURL + docID + `">` + strconv.Itoa(i+1) + `</a>`
}

// FormatResponse renders a response as a single string. Each answer's text is
// followed by a bracketed list of its citation links, and answers are joined
// with ". ". Returns EINVALID if a citation points outside the reference list.
func FormatResponse(r *Response) (string, error) {
	parts := make([]string, 0, len(r.Answer))
	for _, answer := range r.Answer {
		txt := answer.Text
		if len(answer.Citations) > 0 {
			links := make([]string, 0, len(answer.Citations))
			for _, i := range answer.Citations {
				if i < 0 || i >= len(r.References) {
					return "", Errorf(EINVALID, "topic %q cites reference %d but has %d references", r.TopicID, i, len(r.References))
				}
				links = append(links, CitationLink(r.References[i], i))
			}
			txt += "[" + strings.Join(links, ", ") + "]"
		}
		parts = append(parts, txt)
	}
	return strings.Join(parts, ". "), nil
}
