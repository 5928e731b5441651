package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// Column names of a submitted question record, in exact field order. Source is
// optional and may be omitted entirely.
var recordFields = []string{
	"Year", "Question Number", "Subject", "Topic", "Question",
	"Option 1", "Option 2", "Option 3", "Option 4",
	"Answer", "Explanation", "Source",
}

const requiredFieldCount = 11 // all fields except Source

// ValidationError describes why a submitted question record was rejected.
type ValidationError struct {
	Line   int    // 1-based line number within the submitted batch
	Field  string // offending column name, empty if the whole line is bad
	Reason string
	err    error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: field %q: %s", e.Line, e.Field, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.err }

// ValidateRecord checks a candidate record for completeness and answer-key
// correctness and converts it to a Question. Rules apply in order and the
// first failure wins. The caller fills in the Line of a returned error.
func ValidateRecord(fields []string) (entities.Question, *ValidationError) {
	if len(fields) < requiredFieldCount || len(fields) > len(recordFields) {
		return entities.Question{}, &ValidationError{
			Reason: fmt.Sprintf("has %d fields, need %d: %s",
				len(fields), requiredFieldCount, strings.Join(recordFields, ",")),
		}
	}

	for i := 0; i < requiredFieldCount; i++ {
		if strings.TrimSpace(fields[i]) == "" {
			return entities.Question{}, &ValidationError{
				Field:  recordFields[i],
				Reason: "required field is empty",
			}
		}
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return entities.Question{}, &ValidationError{
			Field: "Year", Reason: fmt.Sprintf("not a number: %q", fields[0]), err: err,
		}
	}
	number, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return entities.Question{}, &ValidationError{
			Field: "Question Number", Reason: fmt.Sprintf("not a number: %q", fields[1]), err: err,
		}
	}

	answer, err := entities.ParseOption(fields[9])
	if err != nil {
		return entities.Question{}, &ValidationError{
			Field: "Answer", Reason: "answer must be A, B, C or D", err: err,
		}
	}

	var source string
	if len(fields) == len(recordFields) {
		source = strings.TrimSpace(fields[11])
	}

	return entities.Question{
		Year:          year,
		Number:        number,
		Subject:       strings.TrimSpace(fields[2]),
		Topic:         strings.TrimSpace(fields[3]),
		Text:          strings.TrimSpace(fields[4]),
		OptionA:       strings.TrimSpace(fields[5]),
		OptionB:       strings.TrimSpace(fields[6]),
		OptionC:       strings.TrimSpace(fields[7]),
		OptionD:       strings.TrimSpace(fields[8]),
		CorrectOption: answer,
		Explanation:   strings.TrimSpace(fields[10]),
		Source:        source,
	}, nil
}
