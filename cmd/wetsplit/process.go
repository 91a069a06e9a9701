package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/batch"
	"github.com/fwojciec/wetsplit/fs"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	if (c.Out == "") == !c.DB {
		fmt.Fprintf(deps.Stderr, "error: use exactly one of --out or --db\n")
		return wetsplit.Errorf(wetsplit.EINVALID, "use exactly one of --out or --db")
	}

	d, err := decider(deps, c.DecisionFlags)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wetsplit.ErrorMessage(err))
		return err
	}

	var writer wetsplit.FragmentWriter = deps.Fragments
	var store wetsplit.FragmentStore
	if c.Out != "" {
		store = newStore(deps, c.Out)
		writer = store
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = deps.Config.Concurrency
	}
	p := &batch.Processor{
		Decider:     d,
		Writer:      writer,
		Concurrency: concurrency,
		ReadFile:    deps.ReadFile,
	}

	inputs := make([]batch.Input, len(c.Files))
	for i, path := range c.Files {
		inputs[i] = batch.Input{Path: path}
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Processing %d documents\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", batch.TruncatePath(event.Path, 60), message(event.Error))
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%s)\n", event.Completed, event.Total, batch.TruncatePath(event.Path, 60), event.Extractor)
		}
	}

	result, err := p.Process(deps.Ctx, inputs, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error processing: %v\n", err)
		return err
	}
	if store != nil && result.Saved == 0 {
		// Keep the previous output when every input failed.
		if err := store.Abort(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	} else if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d documents (%s, %d fragments)",
		result.Saved, batch.FormatBytes(result.Bytes), result.Fragments)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, ", %d failed", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

func newStore(deps *Dependencies, out string) wetsplit.FragmentStore {
	if deps.NewStore != nil {
		return deps.NewStore(out)
	}
	dir := filepath.Clean(out)
	return fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
}
