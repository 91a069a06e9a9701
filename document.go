package wetsplit

import (
	"context"
	"time"
)

// Document is a processed input together with the extractor that won.
type Document struct {
	ID          string    `json:"id" yaml:"id"`
	Path        string    `json:"path" yaml:"path"`
	Format      Format    `json:"format" yaml:"format"`
	ContentHash string    `json:"contentHash" yaml:"content_hash"`
	Extractor   string    `json:"extractor" yaml:"extractor"`
	Score       int       `json:"score" yaml:"score"`
	Fragments   int       `json:"fragments" yaml:"fragments"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.Extractor == "" {
		return Errorf(EINVALID, "document extractor required")
	}
	return nil
}

// FragmentWriter persists the fragments of one document.
type FragmentWriter interface {
	Save(ctx context.Context, doc *Document, frags []Fragment) error
}

// FragmentStore is a FragmentWriter whose writes become visible atomically.
type FragmentStore interface {
	FragmentWriter

	// Commit publishes all saved documents.
	Commit() error

	// Abort discards all saved documents.
	Abort() error
}

// FragmentService represents a service for managing stored documents and fragments.
type FragmentService interface {
	FragmentWriter

	// CreateDocument stores a document and its fragments.
	// Returns ECONFLICT if a document with the same content is already stored.
	CreateDocument(ctx context.Context, doc *Document, frags []Fragment) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// FindFragments retrieves the fragments of a document in order.
	// Returns ENOTFOUND if document does not exist.
	FindFragments(ctx context.Context, documentID string) ([]Fragment, error)

	// DeleteDocument permanently removes a document and its fragments.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string `json:"id"`
	Extractor   *string `json:"extractor"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
