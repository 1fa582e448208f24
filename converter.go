package talmud

// Converter renders a formatted response for the terminal.
type Converter interface {
	// Convert transforms a formatted response, plain text with citation
	// anchors, into Markdown. An empty response yields a placeholder line.
	Convert(html string) (string, error)
}
