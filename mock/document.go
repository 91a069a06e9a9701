package mock

import (
	"context"

	"github.com/fwojciec/wetsplit"
)

var _ wetsplit.FragmentService = (*FragmentService)(nil)

// FragmentService is a mock implementation of wetsplit.FragmentService.
type FragmentService struct {
	SaveFn             func(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error
	CreateDocumentFn   func(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*wetsplit.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter wetsplit.DocumentFilter) ([]*wetsplit.Document, error)
	FindFragmentsFn    func(ctx context.Context, documentID string) ([]wetsplit.Fragment, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *FragmentService) Save(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
	return s.SaveFn(ctx, doc, frags)
}

func (s *FragmentService) CreateDocument(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
	return s.CreateDocumentFn(ctx, doc, frags)
}

func (s *FragmentService) FindDocumentByID(ctx context.Context, id string) (*wetsplit.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *FragmentService) FindDocuments(ctx context.Context, filter wetsplit.DocumentFilter) ([]*wetsplit.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *FragmentService) FindFragments(ctx context.Context, documentID string) ([]wetsplit.Fragment, error) {
	return s.FindFragmentsFn(ctx, documentID)
}

func (s *FragmentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
