package repository

import (
	"context"
	"reflect"
	"testing"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

func openSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := OpenDB(context.Background(), DriverSQLite, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLStore(db, DriverSQLite)
}

// TestSQLStoreEmpty verifies a fresh table loads as an empty set, not an error.
func TestSQLStoreEmpty(t *testing.T) {
	s := openSQLiteStore(t)

	qs, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("expected empty store, got %d questions", len(qs))
	}
}

// TestSQLStoreAppendLoad verifies a transactional append round-trips through
// the table ordered by question number.
func TestSQLStoreAppendLoad(t *testing.T) {
	s := openSQLiteStore(t)

	q2 := testQuestion(2)
	q5 := testQuestion(5)
	q5.Subject = "Physiology"
	q5.Source = ""

	total, err := s.Append(context.Background(), []entities.Question{q5, q2})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, []entities.Question{q2, q5}) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, []entities.Question{q2, q5})
	}
}

// TestSQLStoreDuplicateNumber verifies the primary key rejects a colliding
// question number and the batch rolls back.
func TestSQLStoreDuplicateNumber(t *testing.T) {
	s := openSQLiteStore(t)

	if _, err := s.Append(context.Background(), []entities.Question{testQuestion(1)}); err != nil {
		t.Fatalf("seed append failed: %v", err)
	}

	_, err := s.Append(context.Background(), []entities.Question{testQuestion(2), testQuestion(1)})
	if err == nil {
		t.Fatalf("expected duplicate-number append to fail")
	}

	qs, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected rollback to leave 1 question, got %d", len(qs))
	}
}
