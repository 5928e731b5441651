// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAnswerKey = errors.New("answer must be A, B, C or D")

// Option identifies one of the four answer choices of a question.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

// ParseOption normalizes a raw answer letter to an Option.
// Input is case-insensitive; anything outside A-D fails with ErrInvalidAnswerKey.
func ParseOption(s string) (Option, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return OptionA, nil
	case "B":
		return OptionB, nil
	case "C":
		return OptionC, nil
	case "D":
		return OptionD, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidAnswerKey, s)
	}
}

// Index returns the option's offset from 'A' (A=0 .. D=3).
func (o Option) Index() int {
	return int(o[0] - 'A')
}

// Question represents a single multiple-choice question from the store.
// Questions are append-only: once admitted they are never updated or deleted.
type Question struct {
	Year          int    // exam year the question appeared in
	Number        int    // question number, unique within the store
	Subject       string
	Topic         string
	Text          string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption Option
	Explanation   string
	Source        string // optional reference, may be empty
}

// OptionText returns the display text of the given option letter.
func (q Question) OptionText(o Option) string {
	return q.Options()[o.Index()]
}

// Options returns the four option texts in A..D order.
func (q Question) Options() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}
