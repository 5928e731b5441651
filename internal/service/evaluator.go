package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

var ErrQuestionNotFound = errors.New("question not found")

// Evaluation is the outcome of checking a user's answer to a dispatched
// question.
type Evaluation struct {
	IsCorrect         bool
	CorrectOption     entities.Option
	CorrectOptionText string
	Subject           string
	Topic             string
	Explanation       string
	Source            string
}

// Evaluator checks answer callbacks against the stored question table. It is
// stateless per call: nothing records which user answered what.
type Evaluator struct {
	store QuestionStore
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(store QuestionStore) *Evaluator {
	return &Evaluator{store: store}
}

// Evaluate compares the selected option against the recorded correct option
// for the given question number. Both letters are case-insensitive. The
// correct option's display text is resolved positionally from the stored
// question (A maps to option 1 and so on). Fails with ErrQuestionNotFound when
// the number does not resolve to a stored question, which happens with stale
// or tampered callbacks.
func (e *Evaluator) Evaluate(ctx context.Context, questionNumber int, selected, recorded string) (*Evaluation, error) {
	selectedOpt, err := entities.ParseOption(selected)
	if err != nil {
		return nil, err
	}
	recordedOpt, err := entities.ParseOption(recorded)
	if err != nil {
		return nil, err
	}

	questions, err := e.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	for _, q := range questions {
		if q.Number != questionNumber {
			continue
		}
		return &Evaluation{
			IsCorrect:         selectedOpt == recordedOpt,
			CorrectOption:     recordedOpt,
			CorrectOptionText: q.OptionText(recordedOpt),
			Subject:           q.Subject,
			Topic:             q.Topic,
			Explanation:       q.Explanation,
			Source:            q.Source,
		}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrQuestionNotFound, questionNumber)
}
