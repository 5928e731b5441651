package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/drpriyams/neetpg-mcq-bot/internal/service"
)

// Handler routes incoming Telegram updates: answer callbacks go to the
// evaluator, admin messages to the ingestion pipeline or stats, /start to the
// greeting. Errors never propagate past this boundary; they become user-facing
// messages.
type Handler struct {
	bot         Sender
	logger      *zap.Logger
	evaluator   Evaluator
	ingestor    Ingestor
	stats       StatsProvider
	adminChatID int64
}

func NewHandler(
	bot Sender,
	logger *zap.Logger,
	evaluator Evaluator,
	ingestor Ingestor,
	stats StatsProvider,
	adminChatID int64,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		evaluator:   evaluator,
		ingestor:    ingestor,
		stats:       stats,
		adminChatID: adminChatID,
	}
}

// Run consumes updates from a long-poll channel until the context is done.
func (h *Handler) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single update. Safe to call from the webhook
// endpoint and from the long-poll loop.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleAnswerCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	msg := update.Message
	chatID := msg.Chat.ID

	if msg.IsCommand() && msg.Command() == "start" {
		h.send(newMarkdownMessage(chatID, msgWelcome))
		return
	}

	// Everything else is admin-only.
	if chatID != h.adminChatID {
		return
	}

	h.handleAdminMessage(ctx, msg)
}

func (h *Handler) handleAdminMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "add_mcq":
			h.send(newMarkdownMessage(chatID, msgAddMCQHelp))
		case "stats":
			h.handleStats(ctx, chatID)
		default:
			h.send(newMarkdownMessage(chatID, msgUnknownCommand))
		}
		return
	}

	if looksLikeRecord(text) {
		h.handleIngest(ctx, chatID, text)
		return
	}

	h.send(newMarkdownMessage(chatID, msgAdminHelp))
}

func (h *Handler) handleStats(ctx context.Context, chatID int64) {
	st, err := h.stats.Collect(ctx)
	if err != nil {
		h.logger.Error("failed to collect stats", zap.Error(err))
		h.send(newMarkdownMessage(chatID, "❌ Error getting stats: "+err.Error()))
		return
	}
	h.send(newMarkdownMessage(chatID, formatStats(st)))
}

func (h *Handler) handleIngest(ctx context.Context, chatID int64, text string) {
	res, err := h.ingestor.Ingest(ctx, text)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.send(newMarkdownMessage(chatID, formatValidationError(verr)))
		case errors.Is(err, service.ErrNoQuestions):
			h.send(newMarkdownMessage(chatID, msgNoQuestions))
		default:
			h.logger.Error("ingestion failed", zap.Error(err))
			h.send(newMarkdownMessage(chatID, "❌ Error processing CSV data: "+err.Error()))
		}
		return
	}

	h.logger.Info("mcq batch ingested",
		zap.Int("added", len(res.Added)),
		zap.Int("total", res.Total),
	)
	h.send(newMarkdownMessage(chatID, formatIngestSuccess(res)))
}

func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	data, err := parseAnswerCallback(cb.Data)
	if err != nil {
		h.editMessage(chatID, messageID, msgInvalidCallback)
		return
	}

	ev, err := h.evaluator.Evaluate(ctx, data.QuestionNumber, data.Selected, data.Correct)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			h.editMessage(chatID, messageID, msgQuestionNotFound)
		default:
			h.logger.Error("failed to evaluate answer",
				zap.Int("question_number", data.QuestionNumber),
				zap.Error(err),
			)
			h.editMessage(chatID, messageID, msgAnswerError)
		}
		return
	}

	h.editMessage(chatID, messageID, formatEvaluation(ev))
}

// editMessage replaces the original question message with feedback text.
func (h *Handler) editMessage(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	h.send(edit)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
	}
}

// looksLikeRecord reports whether admin free text is a question submission
// rather than a command: its first line has at least the eleven required
// comma-separated fields.
func looksLikeRecord(text string) bool {
	firstLine, _, _ := strings.Cut(text, "\n")
	return strings.Count(firstLine, ",") >= 10
}
