package mock

import "github.com/fwojciec/wetsplit"

var (
	_ wetsplit.Extractor        = (*Extractor)(nil)
	_ wetsplit.Evaluation       = (*Evaluation)(nil)
	_ wetsplit.ContentExtractor = (*ContentExtractor)(nil)
	_ wetsplit.Decider          = (*Decider)(nil)
)

// Extractor is a mock implementation of wetsplit.Extractor.
type Extractor struct {
	NameFn     func() string
	AcceptsFn  func(doc []byte) ([]byte, bool)
	EvaluateFn func(doc []byte) (wetsplit.Evaluation, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Accepts(doc []byte) ([]byte, bool) {
	return e.AcceptsFn(doc)
}

func (e *Extractor) Evaluate(doc []byte) (wetsplit.Evaluation, error) {
	return e.EvaluateFn(doc)
}

// Evaluation is a mock implementation of wetsplit.Evaluation.
type Evaluation struct {
	ScoreFn     func() int
	FragmentsFn func() ([]wetsplit.Fragment, error)
}

func (e *Evaluation) Score() int {
	return e.ScoreFn()
}

func (e *Evaluation) Fragments() ([]wetsplit.Fragment, error) {
	return e.FragmentsFn()
}

// ContentExtractor is a mock implementation of wetsplit.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*wetsplit.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*wetsplit.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Decider is a mock implementation of wetsplit.Decider.
type Decider struct {
	DecideFn func(doc []byte) (*wetsplit.Decision, error)
}

func (d *Decider) Decide(doc []byte) (*wetsplit.Decision, error) {
	return d.DecideFn(doc)
}
