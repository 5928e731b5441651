package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

var ErrNoQuestions = errors.New("no questions found in input")

// IngestResult reports a successfully applied batch.
type IngestResult struct {
	Added []entities.Question // questions appended, in input order
	Total int                 // store total after the append
}

// Ingestor parses admin-submitted delimited text into validated questions and
// appends them to the store. The batch is all-or-nothing: the first invalid
// line aborts the whole submission and nothing is written.
type Ingestor struct {
	store QuestionStore
}

// NewIngestor creates a new Ingestor.
func NewIngestor(store QuestionStore) *Ingestor {
	return &Ingestor{store: store}
}

// Ingest processes raw text, one comma-delimited question per line. Blank
// lines are skipped but still counted for line numbers. Each line must follow
// the exact field order; fields containing commas must be quoted. Question
// numbers must not collide within the batch or with the store. Only a fully
// valid batch reaches Store.Append, as one whole-table write.
func (i *Ingestor) Ingest(ctx context.Context, raw string) (*IngestResult, error) {
	existing, err := i.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	seen := make(map[int]struct{}, len(existing))
	for _, q := range existing {
		seen[q.Number] = struct{}{}
	}

	var batch []entities.Question
	for lineNo, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			return nil, &ValidationError{
				Line:   lineNo + 1,
				Reason: fmt.Sprintf("malformed record: %v", err),
				err:    err,
			}
		}

		q, verr := ValidateRecord(fields)
		if verr != nil {
			verr.Line = lineNo + 1
			return nil, verr
		}

		if _, dup := seen[q.Number]; dup {
			return nil, &ValidationError{
				Line:   lineNo + 1,
				Field:  "Question Number",
				Reason: fmt.Sprintf("question %d already exists", q.Number),
			}
		}
		seen[q.Number] = struct{}{}

		batch = append(batch, q)
	}

	if len(batch) == 0 {
		return nil, ErrNoQuestions
	}

	total, err := i.store.Append(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("append questions: %w", err)
	}

	return &IngestResult{Added: batch, Total: total}, nil
}
