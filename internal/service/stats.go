package service

import (
	"context"
	"fmt"
	"sort"
)

// Stats summarizes the question table for the admin /stats command.
type Stats struct {
	TotalQuestions int
	Subjects       int   // distinct subjects
	Topics         int   // distinct topics
	Years          []int // distinct years, ascending
}

// StatsService computes dataset counts over the store.
type StatsService struct {
	store QuestionStore
}

// NewStatsService creates a new StatsService.
func NewStatsService(store QuestionStore) *StatsService {
	return &StatsService{store: store}
}

// Collect reloads the store and counts questions, subjects, topics and years.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	questions, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	subjects := make(map[string]struct{})
	topics := make(map[string]struct{})
	years := make(map[int]struct{})
	for _, q := range questions {
		subjects[q.Subject] = struct{}{}
		topics[q.Topic] = struct{}{}
		years[q.Year] = struct{}{}
	}

	sortedYears := make([]int, 0, len(years))
	for y := range years {
		sortedYears = append(sortedYears, y)
	}
	sort.Ints(sortedYears)

	return &Stats{
		TotalQuestions: len(questions),
		Subjects:       len(subjects),
		Topics:         len(topics),
		Years:          sortedYears,
	}, nil
}
