package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	topics, err := deps.Topics.FindTopics(deps.Ctx)
	if err != nil {
		return err
	}

	if len(topics) == 0 {
		fmt.Fprintln(deps.Stdout, "No topics found.")
		return nil
	}

	for _, t := range topics {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", t.ID, t.Query)
	}

	return nil
}
