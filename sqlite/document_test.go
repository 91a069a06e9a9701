package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFragments() []wetsplit.Fragment {
	return []wetsplit.Fragment{
		wetsplit.Marker(wetsplit.HintNewPage),
		{
			Meta: wetsplit.Metadata{
				Hints:    []wetsplit.Hint{wetsplit.HintMergedPart},
				PartID:   []wetsplit.PartKey{{Tag: "artikel", Label: "1"}},
				PartName: "artikel 1",
			},
			Intermediate: wetsplit.Intermediate{Raw: "<al>Tekst.</al>", RawType: wetsplit.RawXML},
			Text:         "Tekst.",
		},
	}
}

func createTestDocument(t *testing.T, svc *sqlite.FragmentService, path, hash string) *wetsplit.Document {
	t.Helper()
	doc := &wetsplit.Document{
		Path:        path,
		Format:      wetsplit.FormatXML,
		ContentHash: hash,
		Extractor:   "bwb-xml",
		Score:       5,
	}
	require.NoError(t, svc.CreateDocument(context.Background(), doc, testFragments()))
	return doc
}

func TestFragmentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))

		doc := createTestDocument(t, svc, "BWBR0001840.xml", "abc")

		assert.NotEmpty(t, doc.ID)
		assert.False(t, doc.CreatedAt.IsZero())
		assert.Equal(t, 2, doc.Fragments)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))

		err := svc.CreateDocument(context.Background(), &wetsplit.Document{}, nil)

		assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
	})

	t.Run("rejects content that is already stored", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		createTestDocument(t, svc, "a.xml", "same")

		err := svc.CreateDocument(context.Background(), &wetsplit.Document{
			Path: "b.xml", ContentHash: "same", Extractor: "bwb-xml",
		}, nil)

		assert.Equal(t, wetsplit.ECONFLICT, wetsplit.ErrorCode(err))
	})

	t.Run("leaves a conflicting document untouched", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		createTestDocument(t, svc, "a.xml", "same")
		doc := &wetsplit.Document{Path: "b.xml", ContentHash: "same", Extractor: "bwb-xml"}

		err := svc.CreateDocument(context.Background(), doc, []wetsplit.Fragment{wetsplit.Marker(wetsplit.HintEnd)})

		assert.Equal(t, wetsplit.ECONFLICT, wetsplit.ErrorCode(err))
		assert.Empty(t, doc.ID)
		assert.True(t, doc.CreatedAt.IsZero())
		assert.Zero(t, doc.Fragments)
	})

	t.Run("hashes the fragments without a content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))

		doc := createTestDocument(t, svc, "a.xml", "")

		assert.Len(t, doc.ContentHash, 16)
	})

	t.Run("saves through the writer interface", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		var w wetsplit.FragmentWriter = svc
		doc := &wetsplit.Document{Path: "a.html", ContentHash: "h", Extractor: "html-fallback"}

		require.NoError(t, w.Save(context.Background(), doc, testFragments()))

		found, err := svc.FindDocumentByID(context.Background(), doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "html-fallback", found.Extractor)
	})
}

func TestFragmentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		doc := createTestDocument(t, svc, "BWBR0001840.xml", "abc")

		found, err := svc.FindDocumentByID(context.Background(), doc.ID)

		require.NoError(t, err)
		assert.Equal(t, doc, found)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))

		_, err := svc.FindDocumentByID(context.Background(), "missing")

		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
	})
}

func TestFragmentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by extractor", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		createTestDocument(t, svc, "a.xml", "1")
		require.NoError(t, svc.CreateDocument(context.Background(), &wetsplit.Document{
			Path: "b.pdf", ContentHash: "2", Extractor: "pdf-fallback", Format: wetsplit.FormatPDF,
		}, nil))

		extractor := "pdf-fallback"
		docs, err := svc.FindDocuments(context.Background(), wetsplit.DocumentFilter{Extractor: &extractor})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "b.pdf", docs[0].Path)
		assert.Equal(t, wetsplit.FormatPDF, docs[0].Format)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		createTestDocument(t, svc, "a.xml", "1")
		createTestDocument(t, svc, "b.xml", "2")

		hash := "2"
		docs, err := svc.FindDocuments(context.Background(), wetsplit.DocumentFilter{ContentHash: &hash})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "b.xml", docs[0].Path)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		for i := range 5 {
			createTestDocument(t, svc, fmt.Sprintf("doc%d.xml", i), fmt.Sprint(i))
		}

		page, err := svc.FindDocuments(context.Background(), wetsplit.DocumentFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := svc.FindDocuments(context.Background(), wetsplit.DocumentFilter{Offset: 3})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})
}

func TestFragmentService_FindFragments(t *testing.T) {
	t.Parallel()

	t.Run("returns fragments in order with metadata", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))
		doc := createTestDocument(t, svc, "a.xml", "abc")

		frags, err := svc.FindFragments(context.Background(), doc.ID)

		require.NoError(t, err)
		assert.Equal(t, testFragments(), frags)
	})

	t.Run("returns ENOTFOUND for unknown document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))

		_, err := svc.FindFragments(context.Background(), "missing")

		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
	})
}

func TestFragmentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes the document and its fragments", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewFragmentService(db)
		doc := createTestDocument(t, svc, "a.xml", "abc")

		require.NoError(t, svc.DeleteDocument(context.Background(), doc.ID))

		var n int
		require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM fragments").Scan(&n))
		assert.Equal(t, 0, n)
		_, err := svc.FindDocumentByID(context.Background(), doc.ID)
		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFragmentService(setupTestDB(t))

		err := svc.DeleteDocument(context.Background(), "missing")

		assert.Equal(t, wetsplit.ENOTFOUND, wetsplit.ErrorCode(err))
	})
}
