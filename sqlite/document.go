package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/wetsplit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wetsplit.FragmentService = (*FragmentService)(nil)

// FragmentService implements wetsplit.FragmentService using SQLite.
type FragmentService struct {
	db *DB
}

// NewFragmentService creates a new FragmentService.
func NewFragmentService(db *DB) *FragmentService {
	return &FragmentService{db: db}
}

const documentColumns = "id, path, format, content_hash, extractor, score, fragment_count, created_at"

// Save implements wetsplit.FragmentWriter.
func (s *FragmentService) Save(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
	return s.CreateDocument(ctx, doc, frags)
}

// CreateDocument stores a document and its fragments in one transaction.
func (s *FragmentService) CreateDocument(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	// doc is only updated once the transaction commits.
	id := uuid.New().String()
	createdAt := time.Now().UTC().Truncate(time.Second)
	hash := doc.ContentHash
	if hash == "" {
		hash = hashFragments(frags)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRowContext(ctx, "SELECT id FROM documents WHERE content_hash = ?", hash).Scan(&existing)
	if err == nil {
		return wetsplit.Errorf(wetsplit.ECONFLICT, "document with content hash %s already stored as %s", hash, existing)
	}
	if err != sql.ErrNoRows {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, doc.Path, string(doc.Format), hash, doc.Extractor, doc.Score,
		len(frags), createdAt.Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fragments (id, document_id, position, meta, raw, raw_type, text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, f := range frags {
		meta, err := json.Marshal(f.Meta)
		if err != nil {
			return fmt.Errorf("failed to encode fragment %d metadata: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), id, i, string(meta),
			f.Intermediate.Raw, string(f.Intermediate.RawType), f.Text); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	doc.ID = id
	doc.CreatedAt = createdAt
	doc.ContentHash = hash
	doc.Fragments = len(frags)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*wetsplit.Document, error) {
	var doc wetsplit.Document
	var format, createdAt string
	if err := row.Scan(&doc.ID, &doc.Path, &format, &doc.ContentHash, &doc.Extractor,
		&doc.Score, &doc.Fragments, &createdAt); err != nil {
		return nil, err
	}
	doc.Format = wetsplit.Format(format)

	var err error
	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *FragmentService) FindDocumentByID(ctx context.Context, id string) (*wetsplit.Document, error) {
	doc, err := scanDocument(s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, wetsplit.Errorf(wetsplit.ENOTFOUND, "document not found")
	}
	return doc, err
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *FragmentService) FindDocuments(ctx context.Context, filter wetsplit.DocumentFilter) ([]*wetsplit.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Extractor != nil {
		query.WriteString(" AND extractor = ?")
		args = append(args, *filter.Extractor)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*wetsplit.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// FindFragments retrieves the fragments of a document in order.
func (s *FragmentService) FindFragments(ctx context.Context, documentID string) ([]wetsplit.Fragment, error) {
	if _, err := s.FindDocumentByID(ctx, documentID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT meta, raw, raw_type, text
		FROM fragments
		WHERE document_id = ?
		ORDER BY position ASC
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frags []wetsplit.Fragment
	for rows.Next() {
		var f wetsplit.Fragment
		var meta, rawType string
		if err := rows.Scan(&meta, &f.Intermediate.Raw, &rawType, &f.Text); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(meta), &f.Meta); err != nil {
			return nil, fmt.Errorf("failed to decode fragment metadata: %w", err)
		}
		f.Intermediate.RawType = wetsplit.RawType(rawType)
		frags = append(frags, f)
	}

	return frags, rows.Err()
}

// DeleteDocument permanently removes a document and its fragments.
func (s *FragmentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wetsplit.Errorf(wetsplit.ENOTFOUND, "document not found")
	}

	return nil
}
