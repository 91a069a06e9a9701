// Package fs writes fragments to disk as JSON Lines, one file per document.
package fs

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/wetsplit"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements wetsplit.FragmentStore at compile time.
var _ wetsplit.FragmentStore = (*FileStore)(nil)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileStore implements wetsplit.FragmentStore with atomic update semantics.
// Documents are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// FileName derives the output file stem for a document from its path,
// falling back to its content hash.
func FileName(doc *wetsplit.Document) string {
	base := filepath.Base(doc.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Trim(unsafeName.ReplaceAllString(base, "_"), "_.")
	if base == "" {
		return doc.ContentHash
	}
	return base
}

// Save writes the fragments as <name>.jsonl and the document as
// <name>.yaml into the temporary directory.
func (s *FileStore) Save(ctx context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	stem := filepath.Join(s.tempDir(), FileName(doc))
	if _, err := os.Stat(stem + ".jsonl"); err == nil {
		return wetsplit.Errorf(wetsplit.ECONFLICT, "output for %s already written", doc.Path)
	}

	if err := writeFragments(stem+".jsonl", frags); err != nil {
		return err
	}

	doc.Fragments = len(frags)
	meta, err := FormatDocument(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(stem+".yaml", meta, 0644)
}

func writeFragments(path string, frags []wetsplit.Fragment) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, frag := range frags {
		if err := enc.Encode(frag); err != nil {
			return err
		}
	}
	return w.Flush()
}

// FormatDocument renders the document description as YAML.
func FormatDocument(doc *wetsplit.Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// ReadFragments reads a JSON Lines file written by Save.
func ReadFragments(path string) ([]wetsplit.Fragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var frags []wetsplit.Fragment
	dec := json.NewDecoder(f)
	for dec.More() {
		var frag wetsplit.Fragment
		if err := dec.Decode(&frag); err != nil {
			return nil, err
		}
		frags = append(frags, frag)
	}
	return frags, nil
}

// Commit replaces the output directory with the temporary one. When nothing
// was saved there is no temporary directory and the output is left as is.
func (s *FileStore) Commit() error {
	if _, err := os.Stat(s.tempDir()); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the last Commit.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
