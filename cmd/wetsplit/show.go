package main

import (
	"fmt"

	"github.com/fwojciec/wetsplit"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Fragments.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	frags, err := deps.Fragments.FindFragments(deps.Ctx, doc.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSONLines(deps.Stdout, frags)
	}

	fmt.Fprintf(deps.Stdout, "%s (%s, %s, score %d)\n\n", doc.Path, doc.Format, doc.Extractor, doc.Score)
	writeFragments(deps.Stdout, frags)
	return nil
}
