package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/talmud"
)

// Run executes the format command.
func (c *FormatCmd) Run(deps *Dependencies) error {
	topic := c.Topic
	if topic == "" {
		var err error
		if topic, err = promptTopic(deps.Stdin, deps.Stdout); err != nil {
			return err
		}
	}

	data, err := talmud.LoadData(deps.Ctx, deps.Topics, deps.Responses, topic)
	if err != nil {
		return err
	}

	if err := deps.NewWriter(c.Output).WriteData(deps.Ctx, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Output)
	return nil
}

// promptTopic asks for a topic ID until a non-empty line is entered.
// Returns EINVALID if input ends first.
func promptTopic(r io.Reader, w io.Writer) (string, error) {
	if r == nil {
		return "", talmud.Errorf(talmud.EINVALID, "topic id required")
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "topic id: ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return "", talmud.Errorf(talmud.EINVALID, "topic id required")
		}
		if topic := strings.TrimSpace(scanner.Text()); topic != "" {
			return topic, nil
		}
	}
}
