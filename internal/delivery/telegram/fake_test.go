package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
	"github.com/drpriyams/neetpg-mcq-bot/internal/service"
)

// fakeSender records outbound Telegram calls instead of performing them.
type fakeSender struct {
	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable
	sendErr   error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requested = append(f.requested, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// lastMessage returns the text of the most recently sent plain message.
func (f *fakeSender) lastMessage() (tgbotapi.MessageConfig, bool) {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if msg, ok := f.sent[i].(tgbotapi.MessageConfig); ok {
			return msg, true
		}
	}
	return tgbotapi.MessageConfig{}, false
}

// lastEdit returns the most recently sent message edit.
func (f *fakeSender) lastEdit() (tgbotapi.EditMessageTextConfig, bool) {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if edit, ok := f.sent[i].(tgbotapi.EditMessageTextConfig); ok {
			return edit, true
		}
	}
	return tgbotapi.EditMessageTextConfig{}, false
}

type fakeEvaluator struct {
	ev  *service.Evaluation
	err error
}

func (f *fakeEvaluator) Evaluate(_ context.Context, _ int, _, _ string) (*service.Evaluation, error) {
	return f.ev, f.err
}

type fakeIngestor struct {
	res *service.IngestResult
	err error
	got string
}

func (f *fakeIngestor) Ingest(_ context.Context, raw string) (*service.IngestResult, error) {
	f.got = raw
	return f.res, f.err
}

type fakeStats struct {
	st  *service.Stats
	err error
}

func (f *fakeStats) Collect(_ context.Context) (*service.Stats, error) {
	return f.st, f.err
}

type fakeSource struct {
	qs  []entities.Question
	err error
}

func (f *fakeSource) Load(_ context.Context) ([]entities.Question, error) {
	return f.qs, f.err
}
