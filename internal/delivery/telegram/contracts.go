package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
	"github.com/drpriyams/neetpg-mcq-bot/internal/service"
)

// Sender is the outbound Telegram API surface the delivery layer needs.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Evaluator interface {
	Evaluate(ctx context.Context, questionNumber int, selected, recorded string) (*service.Evaluation, error)
}

type Ingestor interface {
	Ingest(ctx context.Context, raw string) (*service.IngestResult, error)
}

type StatsProvider interface {
	Collect(ctx context.Context) (*service.Stats, error)
}

type QuestionSource interface {
	Load(ctx context.Context) ([]entities.Question, error)
}

type Picker interface {
	PickRandom(qs []entities.Question) (entities.Question, error)
}
