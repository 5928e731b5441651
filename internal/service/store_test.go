package service

import (
	"context"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// memStore is an in-memory QuestionStore for tests.
type memStore struct {
	questions []entities.Question
	loadErr   error
	appendErr error
	appends   int
}

func (m *memStore) Load(_ context.Context) ([]entities.Question, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]entities.Question, len(m.questions))
	copy(out, m.questions)
	return out, nil
}

func (m *memStore) Append(_ context.Context, qs []entities.Question) (int, error) {
	if m.appendErr != nil {
		return 0, m.appendErr
	}
	m.appends++
	m.questions = append(m.questions, qs...)
	return len(m.questions), nil
}

func sampleQuestion(number int) entities.Question {
	return entities.Question{
		Year:          2023,
		Number:        number,
		Subject:       "Anatomy",
		Topic:         "Heart",
		Text:          "Which chamber pumps blood to lungs?",
		OptionA:       "Right atrium",
		OptionB:       "Right ventricle",
		OptionC:       "Left atrium",
		OptionD:       "Left ventricle",
		CorrectOption: entities.OptionB,
		Explanation:   "Right ventricle pumps deoxygenated blood to lungs",
		Source:        "textbook.pdf",
	}
}
