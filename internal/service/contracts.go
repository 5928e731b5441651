package service

import (
	"context"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// QuestionStore provides access to the persisted question set. Implementations
// read the backing medium fresh on every call; the service layer holds no
// cache, so every request sees the latest table.
type QuestionStore interface {
	Load(ctx context.Context) ([]entities.Question, error)
	Append(ctx context.Context, qs []entities.Question) (int, error)
}
