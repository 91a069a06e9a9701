package wetsplit

import (
	"fmt"
	"sort"
)

// DecideOptions configures Decide.
type DecideOptions struct {
	// Threshold discards candidates scoring at or above it. Zero means DefaultThreshold.
	Threshold int
	// FirstOnly keeps only the best candidate.
	FirstOnly bool
	// Strict aborts on the first extractor whose evaluation fails instead
	// of recording the failure and moving on.
	Strict bool
}

// Candidate is one extractor that scored below the threshold.
type Candidate struct {
	Score      int
	Name       string
	Evaluation Evaluation
}

// Fragments returns the candidate's fragments.
func (c Candidate) Fragments() ([]Fragment, error) {
	return c.Evaluation.Fragments()
}

// ExtractorError records an extractor whose evaluation failed.
type ExtractorError struct {
	Name string
	Err  error
}

func (e ExtractorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e ExtractorError) Unwrap() error {
	return e.Err
}

// Decision is the outcome of Decide.
type Decision struct {
	// Candidates sorted by ascending score; ties keep registration order.
	Candidates []Candidate
	// Failures lists extractors that accepted the document but failed to evaluate it.
	Failures []ExtractorError
}

// Best returns the lowest-scoring candidate.
// Returns ENOTFOUND when no extractor is suitable.
func (d *Decision) Best() (Candidate, error) {
	if d == nil || len(d.Candidates) == 0 {
		return Candidate{}, Errorf(ENOTFOUND, "no suitable extractor")
	}
	return d.Candidates[0], nil
}

// Decide offers doc to every extractor in reg and ranks the suitable ones.
// Every extractor works on its own accepted copy of doc, so no state is
// shared between extractors. An empty result is not an error.
func Decide(reg *Registry, doc []byte, opts DecideOptions) (*Decision, error) {
	if doc == nil {
		return nil, Errorf(EINVALID, "document bytes required")
	}
	if reg == nil {
		return nil, Errorf(EINVALID, "registry required")
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	d := &Decision{}
	for _, ex := range reg.Extractors() {
		working, ok := ex.Accepts(doc)
		if !ok {
			continue
		}
		ev, err := ex.Evaluate(working)
		if err != nil {
			if opts.Strict {
				return nil, fmt.Errorf("evaluate %s: %w", ex.Name(), err)
			}
			d.Failures = append(d.Failures, ExtractorError{Name: ex.Name(), Err: err})
			continue
		}
		if ev.Score() >= threshold {
			continue
		}
		d.Candidates = append(d.Candidates, Candidate{Score: ev.Score(), Name: ex.Name(), Evaluation: ev})
	}

	sort.SliceStable(d.Candidates, func(i, j int) bool {
		return d.Candidates[i].Score < d.Candidates[j].Score
	})
	if opts.FirstOnly && len(d.Candidates) > 1 {
		d.Candidates = d.Candidates[:1]
	}
	return d, nil
}

// Decider ranks extractors for a document.
type Decider interface {
	Decide(doc []byte) (*Decision, error)
}

// RegistryDecider implements Decider over a fixed registry and options.
type RegistryDecider struct {
	Registry *Registry
	Options  DecideOptions
}

// NewDecider creates a Decider over reg.
func NewDecider(reg *Registry, opts DecideOptions) *RegistryDecider {
	return &RegistryDecider{Registry: reg, Options: opts}
}

// Decide implements Decider.
func (d *RegistryDecider) Decide(doc []byte) (*Decision, error) {
	return Decide(d.Registry, doc, d.Options)
}
