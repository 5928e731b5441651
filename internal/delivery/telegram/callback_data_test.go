package telegram

import (
	"testing"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// TestAnswerCallbackRoundTrip verifies encode and decode agree.
func TestAnswerCallbackRoundTrip(t *testing.T) {
	data := buildAnswerCallback(42, entities.OptionC, entities.OptionB)
	if data != "answer_42_C_B" {
		t.Fatalf("unexpected payload: %q", data)
	}

	cb, err := parseAnswerCallback(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cb.QuestionNumber != 42 || cb.Selected != "C" || cb.Correct != "B" {
		t.Fatalf("decoded payload mismatch: %+v", cb)
	}
}

// TestParseAnswerCallbackMalformed verifies malformed payloads are rejected.
func TestParseAnswerCallbackMalformed(t *testing.T) {
	for _, data := range []string{
		"",
		"answer",
		"answer_1_B",
		"answer_1_B_B_B",
		"quiz_1_B_B",
		"answer_x_B_B",
		"answer_1__B",
	} {
		if _, err := parseAnswerCallback(data); err == nil {
			t.Fatalf("expected error for %q", data)
		}
	}
}
