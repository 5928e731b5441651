package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// TestPickRandomMembership verifies every pick belongs to the given set.
func TestPickRandomMembership(t *testing.T) {
	s := NewSelector()

	questions := []entities.Question{
		sampleQuestion(1), sampleQuestion(2), sampleQuestion(3),
	}
	members := map[int]bool{1: true, 2: true, 3: true}

	for i := 0; i < 200; i++ {
		q, err := s.PickRandom(questions)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !members[q.Number] {
			t.Fatalf("picked question %d not in the given set", q.Number)
		}
	}
}

// TestPickRandomEmpty verifies picking from an empty set fails with ErrEmptyStore.
func TestPickRandomEmpty(t *testing.T) {
	s := NewSelector()

	if _, err := s.PickRandom(nil); !errors.Is(err, ErrEmptyStore) {
		t.Fatalf("expected ErrEmptyStore, got %v", err)
	}
}

// TestPickRandomConcurrent verifies a single Selector is safe to share
// across goroutines, as scheduled-dispatch requests arrive concurrently.
// Run with the race detector to catch unsynchronized source access.
func TestPickRandomConcurrent(t *testing.T) {
	s := NewSelector()

	questions := []entities.Question{
		sampleQuestion(1), sampleQuestion(2), sampleQuestion(3),
	}
	members := map[int]bool{1: true, 2: true, 3: true}

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				q, err := s.PickRandom(questions)
				if err != nil {
					errs <- err
					return
				}
				if !members[q.Number] {
					errs <- fmt.Errorf("picked question %d not in the given set", q.Number)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent pick failed: %v", err)
	}
}

// TestPickRandomUniform verifies selection frequency is roughly uniform over
// many trials. Bounds are loose to keep the test stable.
func TestPickRandomUniform(t *testing.T) {
	s := NewSelector()

	questions := []entities.Question{
		sampleQuestion(1), sampleQuestion(2), sampleQuestion(3), sampleQuestion(4),
	}

	const trials = 8000
	counts := make(map[int]int, len(questions))
	for i := 0; i < trials; i++ {
		q, err := s.PickRandom(questions)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[q.Number]++
	}

	expected := trials / len(questions)
	for _, q := range questions {
		got := counts[q.Number]
		if got < expected*8/10 || got > expected*12/10 {
			t.Fatalf("question %d picked %d times, expected around %d", q.Number, got, expected)
		}
	}
}
