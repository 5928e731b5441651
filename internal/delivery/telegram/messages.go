// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
	"github.com/drpriyams/neetpg-mcq-bot/internal/service"
)

const (
	msgWelcome = "🩺 Welcome to NEET-PG MCQ Bot!\n\n" +
		"I will post MCQs hourly for your preparation. " +
		"Click on the answer options to test your knowledge!"

	msgAddMCQHelp = "📝 **Add New MCQs**\n\n" +
		"Send me MCQ data in CSV format. Each line should contain:\n" +
		"`Year,Question Number,Subject,Topic,Question,Option 1,Option 2,Option 3,Option 4,Answer,Explanation,Source`\n\n" +
		"Example:\n" +
		"`2023,1,Anatomy,Heart,Which chamber pumps blood to lungs?,Right atrium,Right ventricle,Left atrium,Left ventricle,B,Right ventricle pumps deoxygenated blood to lungs,textbook.pdf`\n\n" +
		"You can send multiple lines at once!"

	msgAdminHelp = "🤖 **Admin Commands:**\n\n" +
		"/add_mcq - Show format for adding new MCQs\n" +
		"/stats - Show database statistics\n\n" +
		"Or send CSV data directly to add new questions!"

	msgInvalidCallback  = "❌ Invalid callback data"
	msgQuestionNotFound = "❌ Question not found"
	msgAnswerError      = "❌ Error processing your answer. Please try again."
	msgNoQuestions      = "❌ No valid questions found"
	msgUnknownCommand   = "Unknown command. Use /add_mcq or /stats."
)

// newMarkdownMessage creates a message with Markdown parse mode.
func newMarkdownMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg
}

// formatQuestion renders a question the way it is posted to the chat.
func formatQuestion(q entities.Question) string {
	return fmt.Sprintf(
		"🩺 **NEET-PG MCQ - %s**\n"+
			"📖 **Topic:** %s\n"+
			"📅 **Year:** %d\n\n"+
			"**Question %d:**\n%s\n\n"+
			"A) %s\nB) %s\nC) %s\nD) %s",
		q.Subject, q.Topic, q.Year, q.Number, q.Text,
		q.OptionA, q.OptionB, q.OptionC, q.OptionD,
	)
}

// answerKeyboard builds the single row of A-D answer buttons for a question.
func answerKeyboard(q entities.Question) tgbotapi.InlineKeyboardMarkup {
	options := []entities.Option{entities.OptionA, entities.OptionB, entities.OptionC, entities.OptionD}

	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, o := range options {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			string(o),
			buildAnswerCallback(q.Number, o, q.CorrectOption),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))
}

// formatEvaluation renders the feedback that replaces the question message.
func formatEvaluation(ev *service.Evaluation) string {
	feedback := "✅ Correct! Well done!"
	if !ev.IsCorrect {
		feedback = fmt.Sprintf("❌ Wrong! The correct answer was %s", ev.CorrectOption)
	}

	return fmt.Sprintf(
		"%s\n\n"+
			"📚 **Subject:** %s\n"+
			"📖 **Topic:** %s\n\n"+
			"**Correct Answer:** %s) %s\n\n"+
			"💡 **Explanation:**\n%s\n\n"+
			"📄 **Source:** %s",
		feedback, ev.Subject, ev.Topic,
		ev.CorrectOption, ev.CorrectOptionText,
		ev.Explanation, ev.Source,
	)
}

// formatStats renders dataset statistics for the admin.
func formatStats(st *service.Stats) string {
	years := make([]string, 0, len(st.Years))
	for _, y := range st.Years {
		years = append(years, fmt.Sprintf("%d", y))
	}

	return fmt.Sprintf(
		"📊 **MCQ Database Statistics**\n\n"+
			"📚 Total Questions: %d\n"+
			"📖 Subjects: %d\n"+
			"🏷️ Topics: %d\n"+
			"📅 Years: %s",
		st.TotalQuestions, st.Subjects, st.Topics, strings.Join(years, ", "),
	)
}

// formatIngestSuccess renders the confirmation after an applied batch, listing
// up to five of the added questions.
func formatIngestSuccess(res *service.IngestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ **Successfully added %d new MCQ(s)!**\n\n", len(res.Added))
	fmt.Fprintf(&b, "📊 Total questions now: %d\n\n", res.Total)
	b.WriteString("**Added questions:**\n")

	const maxListed = 5
	for i, q := range res.Added {
		if i == maxListed {
			break
		}
		fmt.Fprintf(&b, "• Q%d: %s - %s\n", q.Number, q.Subject, q.Topic)
	}
	if n := len(res.Added) - maxListed; n > 0 {
		fmt.Fprintf(&b, "... and %d more", n)
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatValidationError renders a rejected batch for the submitting admin,
// naming the offending line and reason. The batch was not applied.
func formatValidationError(verr *service.ValidationError) string {
	return fmt.Sprintf("❌ Line %d rejected, nothing was added.\n%s", verr.Line, verr.Error())
}
