package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/batch"
)

// extract decides on the file and returns the winning fragments.
func extract(deps *Dependencies, path string, flags DecisionFlags) (*wetsplit.Document, []wetsplit.Fragment, error) {
	data, err := readInput(deps, path)
	if err != nil {
		return nil, nil, err
	}
	d, err := decider(deps, flags)
	if err != nil {
		return nil, nil, err
	}
	return batch.Extract(d, path, data)
}

// Run executes the fragments command.
func (c *FragmentsCmd) Run(deps *Dependencies) error {
	_, frags, err := extract(deps, c.File, c.DecisionFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}
	if c.JSON {
		return writeJSONLines(deps.Stdout, frags)
	}
	writeFragments(deps.Stdout, frags)
	return nil
}

func writeJSONLines(w io.Writer, frags []wetsplit.Fragment) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, f := range frags {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}

// writeFragments prints one block per fragment: a bracketed hint line,
// the part name when known, then the text.
func writeFragments(w io.Writer, frags []wetsplit.Fragment) {
	for _, f := range frags {
		hints := make([]string, len(f.Meta.Hints))
		for i, h := range f.Meta.Hints {
			hints[i] = string(h)
		}
		if f.IsMarker() {
			fmt.Fprintf(w, "-- %s --\n", strings.Join(hints, ","))
			continue
		}
		fmt.Fprintf(w, "[%s]", strings.Join(hints, ","))
		if f.Meta.PartName != "" {
			fmt.Fprintf(w, " %s", f.Meta.PartName)
		}
		fmt.Fprintf(w, "\n%s\n\n", f.Text)
	}
}
