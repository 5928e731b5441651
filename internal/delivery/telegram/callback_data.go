package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

const answerCallbackPrefix = "answer"

var errInvalidCallback = errors.New("invalid callback data")

// answerCallback is the decoded payload of an answer button press:
// "answer_<question_number>_<selected>_<correct>". All four underscore-
// separated fields are required.
type answerCallback struct {
	QuestionNumber int
	Selected       string
	Correct        string
}

// buildAnswerCallback encodes the callback payload for one answer button.
// The recorded correct option travels inside the payload so evaluation does
// not depend on any per-message server state.
func buildAnswerCallback(questionNumber int, selected entities.Option, correct entities.Option) string {
	return strings.Join([]string{
		answerCallbackPrefix,
		strconv.Itoa(questionNumber),
		string(selected),
		string(correct),
	}, "_")
}

// parseAnswerCallback decodes an answer callback payload.
func parseAnswerCallback(data string) (answerCallback, error) {
	parts := strings.Split(data, "_")
	if len(parts) != 4 || parts[0] != answerCallbackPrefix {
		return answerCallback{}, errInvalidCallback
	}
	for _, p := range parts[1:] {
		if p == "" {
			return answerCallback{}, errInvalidCallback
		}
	}

	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return answerCallback{}, errInvalidCallback
	}

	return answerCallback{
		QuestionNumber: number,
		Selected:       parts[2],
		Correct:        parts[3],
	}, nil
}
