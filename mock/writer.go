package mock

import (
	"context"

	"github.com/fwojciec/wetsplit"
)

var (
	_ wetsplit.FragmentWriter = (*FragmentWriter)(nil)
	_ wetsplit.FragmentStore  = (*FragmentStore)(nil)
	_ wetsplit.OCR            = (*OCR)(nil)
)

// FragmentWriter is a mock implementation of wetsplit.FragmentWriter.
type FragmentWriter struct {
	SaveFn func(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error
}

func (w *FragmentWriter) Save(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
	return w.SaveFn(ctx, doc, frags)
}

// FragmentStore is a mock implementation of wetsplit.FragmentStore.
type FragmentStore struct {
	SaveFn   func(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *FragmentStore) Save(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
	return s.SaveFn(ctx, doc, frags)
}

func (s *FragmentStore) Commit() error {
	return s.CommitFn()
}

func (s *FragmentStore) Abort() error {
	return s.AbortFn()
}

// OCR is a mock implementation of wetsplit.OCR.
type OCR struct {
	RecognizeFn func(ctx context.Context, img wetsplit.PageImage) (string, error)
}

func (o *OCR) Recognize(ctx context.Context, img wetsplit.PageImage) (string, error) {
	return o.RecognizeFn(ctx, img)
}
