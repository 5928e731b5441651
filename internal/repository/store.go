// Package repository provides the persisted question store backends.
package repository

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

var (
	// ErrStoreUnavailable means the backing data is missing or malformed.
	ErrStoreUnavailable = errors.New("question store unavailable")
	// ErrStoreWrite means persisting the combined question set failed.
	ErrStoreWrite = errors.New("question store write failed")
)

// header is the canonical column order of the question table. Every backend
// stores exactly these twelve fields per question.
var header = []string{
	"Year", "Question Number", "Subject", "Topic", "Question",
	"Option 1", "Option 2", "Option 3", "Option 4",
	"Answer", "Explanation", "Source",
}

func questionFromRow(row []string) (entities.Question, error) {
	if len(row) != len(header) {
		return entities.Question{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}

	year, err := strconv.Atoi(row[0])
	if err != nil {
		return entities.Question{}, fmt.Errorf("invalid year %q: %w", row[0], err)
	}
	number, err := strconv.Atoi(row[1])
	if err != nil {
		return entities.Question{}, fmt.Errorf("invalid question number %q: %w", row[1], err)
	}
	answer, err := entities.ParseOption(row[9])
	if err != nil {
		return entities.Question{}, err
	}

	return entities.Question{
		Year:          year,
		Number:        number,
		Subject:       row[2],
		Topic:         row[3],
		Text:          row[4],
		OptionA:       row[5],
		OptionB:       row[6],
		OptionC:       row[7],
		OptionD:       row[8],
		CorrectOption: answer,
		Explanation:   row[10],
		Source:        row[11],
	}, nil
}

func rowFromQuestion(q entities.Question) []string {
	return []string{
		strconv.Itoa(q.Year),
		strconv.Itoa(q.Number),
		q.Subject,
		q.Topic,
		q.Text,
		q.OptionA,
		q.OptionB,
		q.OptionC,
		q.OptionD,
		string(q.CorrectOption),
		q.Explanation,
		q.Source,
	}
}
