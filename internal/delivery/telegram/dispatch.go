package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// Dispatcher posts one randomly selected question to the configured chat with
// the A-D answer keyboard. It is invoked by whatever fires the schedule: the
// HTTP trigger endpoint or the in-process cron.
type Dispatcher struct {
	bot    Sender
	logger *zap.Logger
	source QuestionSource
	picker Picker
	chatID int64
}

func NewDispatcher(
	bot Sender,
	logger *zap.Logger,
	source QuestionSource,
	picker Picker,
	chatID int64,
) *Dispatcher {
	return &Dispatcher{
		bot:    bot,
		logger: logger,
		source: source,
		picker: picker,
		chatID: chatID,
	}
}

// Dispatch reloads the store, picks a question and sends it. The chosen
// question is returned so callers can report it.
func (d *Dispatcher) Dispatch(ctx context.Context) (*entities.Question, error) {
	questions, err := d.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	q, err := d.picker.PickRandom(questions)
	if err != nil {
		return nil, err
	}

	msg := newMarkdownMessage(d.chatID, formatQuestion(q))
	msg.ReplyMarkup = answerKeyboard(q)

	if _, err := d.bot.Send(msg); err != nil {
		return nil, fmt.Errorf("send question: %w", err)
	}

	d.logger.Info("mcq dispatched",
		zap.Int("question_number", q.Number),
		zap.String("subject", q.Subject),
		zap.String("topic", q.Topic),
	)

	return &q, nil
}
