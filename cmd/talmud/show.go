package main

import (
	"fmt"

	"github.com/fwojciec/talmud"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	data, err := talmud.LoadData(deps.Ctx, deps.Topics, deps.Responses, c.Topic)
	if err != nil {
		return err
	}

	md, err := deps.Converter.Convert(data.Response)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n", data.Query, md)

	citations, err := deps.Citations.ExtractCitations(data.Response)
	if err != nil {
		return err
	}
	if len(citations) == 0 {
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nSources (%d):\n\n", len(citations))
	for _, cit := range citations {
		name := cit.DocID
		if name == "" {
			name = cit.URL
		}
		fmt.Fprintf(deps.Stdout, "  [%s] %s\n       %s\n", cit.Number, name, cit.URL)
	}

	return nil
}
