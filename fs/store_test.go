package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Fragment Storage
// The store writes into a temp directory and publishes it on commit

func testFragments() []wetsplit.Fragment {
	return []wetsplit.Fragment{
		{
			Meta: wetsplit.Metadata{
				Hints:  []wetsplit.Hint{wetsplit.HintMergedPart},
				PartID: []wetsplit.PartKey{{Tag: "artikel", Label: "1"}},
			},
			Intermediate: wetsplit.Intermediate{Raw: "<al>Deze wet verstaat onder <i>minister</i>.</al>", RawType: wetsplit.RawXML},
			Text:         "Deze wet verstaat onder minister.",
		},
		wetsplit.Marker(wetsplit.HintEnd),
	}
}

func testDocument() *wetsplit.Document {
	return &wetsplit.Document{
		Path:        "/data/in/BWBR0001840.xml",
		Format:      wetsplit.FormatXML,
		ContentHash: "00ff00ff00ff00ff",
		Extractor:   "bwb",
		Score:       5000,
	}
}

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")

	// When I save a document
	err := store.Save(context.Background(), testDocument(), testFragments())

	// Then no error occurs
	require.NoError(t, err)

	// And the fragments exist in the temp directory
	_, err = os.Stat(filepath.Join(base, "output.tmp", "BWBR0001840.jsonl"))
	require.NoError(t, err, "fragments should exist in temp directory")
	_, err = os.Stat(filepath.Join(base, "output.tmp", "BWBR0001840.yaml"))
	require.NoError(t, err, "metadata should exist in temp directory")

	// And final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given a store with a saved document
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), testDocument(), testFragments()))

	// When I commit
	err := store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And the final directory holds the fragments
	frags, err := fs.ReadFragments(filepath.Join(base, "output", "BWBR0001840.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, testFragments(), frags)

	// And temp directory is gone
	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesPreviousOutput(t *testing.T) {
	t.Parallel()

	// Given a committed store
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), testDocument(), testFragments()))
	require.NoError(t, store.Commit())

	// When a second run saves another document and commits
	doc := testDocument()
	doc.Path = "/data/in/stcrt-2024-1.html"
	require.NoError(t, store.Save(context.Background(), doc, testFragments()))
	require.NoError(t, store.Commit())

	// Then only the second run's output remains
	entries, err := os.ReadDir(filepath.Join(base, "output"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"stcrt-2024-1.jsonl", "stcrt-2024-1.yaml"}, names)
}

func TestFileStore_CommitWithoutSaveKeepsPreviousOutput(t *testing.T) {
	t.Parallel()

	// Given a committed store
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), testDocument(), testFragments()))
	require.NoError(t, store.Commit())

	// When a second run saves nothing and commits
	err := store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And the first run's output is still there
	frags, err := fs.ReadFragments(filepath.Join(base, "output", "BWBR0001840.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, testFragments(), frags)
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with a saved document
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), testDocument(), testFragments()))

	// When I abort
	err := store.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_WritesDocumentMetadata(t *testing.T) {
	t.Parallel()

	// Given a saved document
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), testDocument(), testFragments()))

	// When I read the metadata file
	data, err := os.ReadFile(filepath.Join(base, "output.tmp", "BWBR0001840.yaml"))
	require.NoError(t, err)

	// Then it describes the winning extractor
	content := string(data)
	assert.Contains(t, content, "extractor: bwb")
	assert.Contains(t, content, "score: 5000")
	assert.Contains(t, content, "content_hash: 00ff00ff00ff00ff")

	// And it counts the fragments
	assert.Contains(t, content, "fragments: 2")
}

func TestFileStore_RejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	// Given a store with a saved document
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), testDocument(), testFragments()))

	// When a document with the same base name is saved
	doc := testDocument()
	doc.Path = "/other/dir/BWBR0001840.html"
	err := store.Save(context.Background(), doc, testFragments())

	// Then a conflict is returned
	assert.Equal(t, wetsplit.ECONFLICT, wetsplit.ErrorCode(err))
}

func TestFileStore_RejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	// Given a store
	store := fs.NewFileStore(t.TempDir(), "output")

	// When I save a document without extractor
	err := store.Save(context.Background(), &wetsplit.Document{Path: "a.xml"}, nil)

	// Then an invalid error is returned
	assert.Equal(t, wetsplit.EINVALID, wetsplit.ErrorCode(err))
}

func TestFileName(t *testing.T) {
	t.Parallel()

	t.Run("strips directory and extension", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "gmb-2023-5", fs.FileName(&wetsplit.Document{Path: "/x/y/gmb-2023-5.xml"}))
	})

	t.Run("replaces unsafe characters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Kamerstuk_36200_nr_3", fs.FileName(&wetsplit.Document{Path: "Kamerstuk 36200 (nr 3).pdf"}))
	})

	t.Run("falls back to content hash", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "abcd", fs.FileName(&wetsplit.Document{Path: "../", ContentHash: "abcd"}))
	})
}
