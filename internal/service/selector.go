package service

import (
	"errors"
	"math/rand"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

var ErrEmptyStore = errors.New("no questions available")

// Selector picks the next question to present. Picks go through the
// goroutine-safe global rand source, so a single Selector may serve
// concurrent dispatch requests.
type Selector struct{}

// NewSelector creates a new Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// PickRandom returns one question, uniformly distributed over the given set.
// Every call is independent; there is no recent-repeat avoidance yet.
// TODO: track recently dispatched question numbers to avoid quick repeats.
func (s *Selector) PickRandom(qs []entities.Question) (entities.Question, error) {
	if len(qs) == 0 {
		return entities.Question{}, ErrEmptyStore
	}
	return qs[rand.Intn(len(qs))], nil
}
