package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/drpriyams/neetpg-mcq-bot/internal/domain/entities"
)

// SQLStore persists questions in a relational table with transactional
// appends, removing the whole-file race the CSV backend carries.
type SQLStore struct {
	db     *sql.DB
	driver Driver // sqlite or postgres, decides placeholder style
}

// NewSQLStore creates a store over an open database handle.
func NewSQLStore(db *sql.DB, driver Driver) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// Load reads the full question table ordered by question number.
func (s *SQLStore) Load(ctx context.Context) ([]entities.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT number, year, subject, topic, question,
		       option_a, option_b, option_c, option_d,
		       answer, explanation, source
		FROM questions ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var questions []entities.Question
	for rows.Next() {
		var q entities.Question
		var answer string
		err := rows.Scan(
			&q.Number, &q.Year, &q.Subject, &q.Topic, &q.Text,
			&q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&answer, &q.Explanation, &q.Source,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		q.CorrectOption, err = entities.ParseOption(answer)
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrStoreUnavailable, q.Number, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return questions, nil
}

// Append inserts the batch in one transaction and returns the new total count.
func (s *SQLStore) Append(ctx context.Context, qs []entities.Question) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	defer tx.Rollback()

	for _, q := range qs {
		_, err := tx.ExecContext(ctx, s.insertQuery(),
			q.Number, q.Year, q.Subject, q.Topic, q.Text,
			q.OptionA, q.OptionB, q.OptionC, q.OptionD,
			string(q.CorrectOption), q.Explanation, q.Source,
		)
		if err != nil {
			return 0, fmt.Errorf("%w: question %d: %v", ErrStoreWrite, q.Number, err)
		}
	}

	var total int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return total, nil
}

func (s *SQLStore) insertQuery() string {
	if s.driver == DriverPostgres {
		return `INSERT INTO questions
			(number, year, subject, topic, question,
			 option_a, option_b, option_c, option_d,
			 answer, explanation, source)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	}
	return `INSERT INTO questions
		(number, year, subject, topic, question,
		 option_a, option_b, option_c, option_d,
		 answer, explanation, source)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`
}
