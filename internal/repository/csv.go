package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// CSVStore persists questions in a single comma-delimited file with a header
// row, one question per line. A write is "read whole file, merge, write whole
// file": the mutex serializes writers within this process, but two processes
// sharing one file can still clobber each other (last writer wins).
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore creates a store backed by the file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load reads the full question table from the file.
func (s *CSVStore) Load(_ context.Context) ([]entities.Question, error) {
	return s.load()
}

// Append persists the combined question set and returns the new total count.
// The load+write cycle runs under the store mutex.
func (s *CSVStore) Append(_ context.Context, qs []entities.Question) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return 0, err
	}

	combined := append(existing, qs...)
	if err := s.write(combined); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	return len(combined), nil
}

func (s *CSVStore) load() ([]entities.Question, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(rows) == 0 || !equalRow(rows[0], header) {
		return nil, fmt.Errorf("%w: missing or wrong header row in %s", ErrStoreUnavailable, s.path)
	}

	questions := make([]entities.Question, 0, len(rows)-1)
	for i, row := range rows[1:] {
		q, err := questionFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrStoreUnavailable, i+2, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// write replaces the whole file via temp file + rename so readers never see a
// half-written table.
func (s *CSVStore) write(qs []entities.Question) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".questions-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	for _, q := range qs {
		if err := w.Write(rowFromQuestion(q)); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
