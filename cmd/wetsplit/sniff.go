package main

import (
	"fmt"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/sniff"
)

// Run executes the sniff command.
func (c *SniffCmd) Run(deps *Dependencies) error {
	for _, path := range c.Files {
		data, err := readInput(deps, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", sniff.Detect(data), path)
	}
	return nil
}
