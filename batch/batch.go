// Package batch runs fragment extraction over many documents
// concurrently and saves the results in input order.
package batch

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/sniff"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents processed at once.
const DefaultConcurrency = 4

// Processor decides and extracts every input and hands the fragments to
// Writer.
type Processor struct {
	Decider     wetsplit.Decider
	Writer      wetsplit.FragmentWriter
	Concurrency int
	// ReadFile loads inputs given by path only. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// Input is a document to process. Data is read from Path when nil.
type Input struct {
	Path string
	Data []byte
}

// Output is the outcome for one input.
type Output struct {
	Document  *wetsplit.Document
	Fragments []wetsplit.Fragment
	Err       error
}

// Result holds the outcome of a Process call.
type Result struct {
	Saved     int
	Failed    int
	Bytes     int
	Fragments int
	// Outputs are in input order.
	Outputs []Output
}

// ProgressEvent reports progress during processing.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Extractor string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

type processed struct {
	position int
	path     string
	size     int
	out      Output
}

// Process extracts fragments from all inputs. A failing input is
// counted and reported but does not stop the others. Only context
// cancellation aborts the run.
func (p *Processor) Process(ctx context.Context, inputs []Input, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	total := len(inputs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan processed, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for i, in := range inputs {
			g.Go(func() error {
				resultCh <- p.processInput(gctx, i, in)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]processed, total)
	for r := range resultCh {
		results[r.position] = r
		n := int(completed.Add(1))
		if progress == nil {
			continue
		}
		ev := ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, Path: r.path}
		if r.out.Err != nil {
			ev.Type, ev.Error = ProgressFailed, r.out.Err
		} else {
			ev.Extractor = r.out.Document.Extractor
		}
		progress(ev)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Outputs: make([]Output, total)}
	for i, r := range results {
		if r.out.Err == nil && p.Writer != nil {
			if err := p.Writer.Save(ctx, r.out.Document, r.out.Fragments); err != nil {
				r.out.Err = fmt.Errorf("save %s: %w", r.path, err)
			}
		}
		res.Outputs[i] = r.out
		if r.out.Err != nil {
			res.Failed++
			continue
		}
		res.Saved++
		res.Bytes += r.size
		res.Fragments += len(r.out.Fragments)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return res, nil
}

func (p *Processor) processInput(ctx context.Context, position int, in Input) processed {
	r := processed{position: position, path: in.Path}
	if err := ctx.Err(); err != nil {
		r.out.Err = err
		return r
	}

	data := in.Data
	if data == nil {
		read := p.ReadFile
		if read == nil {
			read = os.ReadFile
		}
		var err error
		if data, err = read(in.Path); err != nil {
			r.out.Err = err
			return r
		}
	}
	r.size = len(data)

	doc, frags, err := Extract(p.Decider, in.Path, data)
	r.out = Output{Document: doc, Fragments: frags, Err: err}
	return r
}

// Extract runs decider on data and returns the fragments of the best
// candidate with a document describing them.
func Extract(decider wetsplit.Decider, path string, data []byte) (*wetsplit.Document, []wetsplit.Fragment, error) {
	decision, err := decider.Decide(data)
	if err != nil {
		return nil, nil, err
	}
	best, err := decision.Best()
	if err != nil {
		return nil, nil, err
	}
	frags, err := best.Fragments()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", best.Name, err)
	}
	return &wetsplit.Document{
		Path:        path,
		Format:      sniff.Detect(data),
		ContentHash: ComputeHash(data),
		Extractor:   best.Name,
		Score:       best.Score,
		Fragments:   len(frags),
	}, frags, nil
}
