package entities

import (
	"errors"
	"testing"
)

// TestParseOption verifies normalization and rejection of bad letters.
func TestParseOption(t *testing.T) {
	for raw, want := range map[string]Option{
		"A": OptionA, "b": OptionB, " C ": OptionC, "d": OptionD,
	} {
		got, err := ParseOption(raw)
		if err != nil {
			t.Fatalf("ParseOption(%q): unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseOption(%q) = %s, want %s", raw, got, want)
		}
	}

	for _, raw := range []string{"", "E", "AB", "1"} {
		if _, err := ParseOption(raw); !errors.Is(err, ErrInvalidAnswerKey) {
			t.Fatalf("ParseOption(%q): expected ErrInvalidAnswerKey, got %v", raw, err)
		}
	}
}

// TestOptionText verifies the positional letter-to-text mapping.
func TestOptionText(t *testing.T) {
	q := Question{OptionA: "one", OptionB: "two", OptionC: "three", OptionD: "four"}

	for o, want := range map[Option]string{
		OptionA: "one", OptionB: "two", OptionC: "three", OptionD: "four",
	} {
		if got := q.OptionText(o); got != want {
			t.Fatalf("OptionText(%s) = %q, want %q", o, got, want)
		}
	}
}
