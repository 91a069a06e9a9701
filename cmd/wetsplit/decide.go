package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/fwojciec/wetsplit"
)

// readInput loads a document named on the command line.
func readInput(deps *Dependencies, path string) ([]byte, error) {
	data, err := deps.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, wetsplit.Errorf(wetsplit.EINVALID, "file %q does not exist", path)
	} else if err != nil {
		return nil, err
	}
	return data, nil
}

// decider builds the decider for a command. Naming an extractor restricts
// the registry to it and lifts the threshold.
func decider(deps *Dependencies, flags DecisionFlags) (wetsplit.Decider, error) {
	opts := deps.Config.DecideOptions(flags)
	if flags.Extractor == "" {
		return deps.Decider(opts), nil
	}

	ex, err := deps.Registry.Lookup(flags.Extractor)
	if err != nil {
		return nil, err
	}
	reg, err := wetsplit.NewRegistry(ex)
	if err != nil {
		return nil, err
	}
	opts.Threshold = math.MaxInt
	return wetsplit.NewDecider(reg, opts), nil
}

// Run executes the decide command.
func (c *DecideCmd) Run(deps *Dependencies) error {
	data, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	d, err := decider(deps, c.DecisionFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	decision, err := d.Decide(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	if len(decision.Candidates) == 0 {
		fmt.Fprintf(deps.Stdout, "No suitable extractor for %s\n", c.File)
	}
	for _, cand := range decision.Candidates {
		fmt.Fprintf(deps.Stdout, "%6d  %s\n", cand.Score, cand.Name)
	}
	for _, f := range decision.Failures {
		fmt.Fprintf(deps.Stdout, "failed  %s: %s\n", f.Name, message(f.Err))
	}
	return nil
}

// message returns the user-facing text of err, falling back to the raw
// error for failures outside the domain error codes.
func message(err error) string {
	if wetsplit.ErrorCode(err) == wetsplit.EINTERNAL {
		return err.Error()
	}
	return wetsplit.ErrorMessage(err)
}
