// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/pollsite/models"
)

// SQLStore implements QuestionStore on database/sql. Queries use $n
// placeholders and RETURNING, which both lib/pq and modernc sqlite accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

var _ QuestionStore = (*SQLStore)(nil)

func (s *SQLStore) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	const op = "store.CreateQuestion"

	q := models.Question{QuestionText: text, PubDate: pubDate.UTC()}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.QuestionText, q.PubDate).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

func (s *SQLStore) ListQuestions(ctx context.Context) ([]models.Question, error) {
	const op = "store.ListQuestions"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		ORDER BY pub_date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return questions, nil
}

func (s *SQLStore) QuestionByID(ctx context.Context, id int64) (models.Question, error) {
	const op = "store.QuestionByID"

	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, fmt.Errorf("%s: question %d: %w", op, id, ErrNotFound)
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	q.PubDate = q.PubDate.UTC()
	return q, nil
}

func (s *SQLStore) CreateChoice(ctx context.Context, questionID int64, text string) (models.Choice, error) {
	const op = "store.CreateChoice"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Choice{}, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)
	if err != nil {
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return models.Choice{}, fmt.Errorf("%s: question %d: %w", op, questionID, ErrNotFound)
	}

	c := models.Choice{QuestionID: questionID, ChoiceText: text}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&c.ID)
	if err != nil {
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Choice{}, fmt.Errorf("%s: commit: %w", op, err)
	}

	return c, nil
}

func (s *SQLStore) Choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	const op = "store.Choices"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return choices, nil
}

// IncrementVotes does the increment in SQL so concurrent voters never
// overwrite each other.
func (s *SQLStore) IncrementVotes(ctx context.Context, questionID, choiceID int64) error {
	const op = "store.IncrementVotes"

	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: choice %d of question %d: %w", op, choiceID, questionID, ErrNotFound)
	}

	return nil
}
