// Package htmltomarkdown renders formatted responses as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/talmud"
)

// NoAnswer is printed in place of a response that has no answers.
const NoAnswer = "_(no answer)_"

// Ensure Converter implements talmud.Converter at compile time.
var _ talmud.Converter = (*Converter)(nil)

// Converter renders responses with html-to-markdown. Citation anchors
// become inline Markdown links.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders a formatted response as Markdown with surrounding
// whitespace trimmed. Blank responses render as NoAnswer.
func (c *Converter) Convert(response string) (string, error) {
	if strings.TrimSpace(response) == "" {
		return NoAnswer, nil
	}

	md, err := c.conv.ConvertString(response)
	if err != nil {
		return "", talmud.Errorf(talmud.EINVALID, "failed to render response: %v", err)
	}

	return strings.TrimSpace(md), nil
}
