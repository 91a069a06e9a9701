package main

import (
	"fmt"

	"github.com/fwojciec/wetsplit"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := wetsplit.DocumentFilter{Limit: c.Limit}
	if c.Extractor != "" {
		filter.Extractor = &c.Extractor
	}
	docs, err := deps.Fragments.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'wetsplit process --db' to add some.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %-16s %5d  %s\n", d.ID, d.Extractor, d.Fragments, d.Path)
	}
	return nil
}
