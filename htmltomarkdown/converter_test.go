package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/talmud"
	"github.com/fwojciec/talmud/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements talmud.Converter at compile time.
var _ talmud.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("keeps plain response text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("First sentence. Second sentence")

		require.NoError(t, err)
		assert.Contains(t, md, "First sentence. Second sentence")
	})

	t.Run("converts citation anchors to links", func(t *testing.T) {
		t.Parallel()

		r := &talmud.Response{
			TopicID:    "42",
			References: []string{"R1"},
			Answer:     []talmud.Answer{{Text: "Answer", Citations: []int{0}}},
		}
		html, err := talmud.FormatResponse(r)
		require.NoError(t, err)

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Answer")
		assert.Contains(t, md, "[1](https://chatnoir-webcontent.chatnoir.eu/")
		assert.Contains(t, md, "trec-id=R1")
		assert.NotContains(t, md, "<a")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Visit <a href="https://example.com">Example</a> for more info.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("renders placeholder for blank response", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("  \n ")

		require.NoError(t, err)
		assert.Equal(t, htmltomarkdown.NoAnswer, md)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<p>Answer</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Answer", md)
	})
}
