package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/wetsplit"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	_, frags, err := extract(deps, c.File, c.DecisionFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	var parts []string
	for _, f := range frags {
		if f.IsMarker() || f.Meta.HasHint(wetsplit.HintRepeated) {
			continue
		}
		s := f.Text
		if c.Markdown {
			if s, err = markdown(deps.Converter, f); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
				return err
			}
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	fmt.Fprintln(deps.Stdout, strings.Join(parts, "\n\n"))
	return nil
}

// markdown renders headings as level two headings and converts HTML
// intermediates. Other fragments keep their text.
func markdown(conv wetsplit.Converter, f wetsplit.Fragment) (string, error) {
	if f.Meta.HasHint(wetsplit.HintHeader) {
		return "## " + f.Text, nil
	}
	if f.Intermediate.RawType != wetsplit.RawHTML || f.Intermediate.Raw == "" {
		return f.Text, nil
	}
	md, err := conv.Convert(f.Intermediate.Raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
