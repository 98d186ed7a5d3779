// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store defines persistence for questions and choices and a
// database/sql implementation of it.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/pollsite/models"
)

var (
	// ErrNotFound is returned when a question or choice does not exist.
	ErrNotFound = errors.New("not found")
)

//go:generate mockgen -destination=../mocks/mock_store.go -package=mocks github.com/danielhkuo/pollsite/store QuestionStore

// QuestionStore reads and writes questions and their choices. It knows
// nothing about publication; callers decide what is visible.
type QuestionStore interface {
	// CreateQuestion inserts a question and returns it with its ID.
	CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error)
	// ListQuestions returns every question, ordered by pub_date DESC, id DESC.
	ListQuestions(ctx context.Context) ([]models.Question, error)
	// QuestionByID returns ErrNotFound if no question has the ID.
	QuestionByID(ctx context.Context, id int64) (models.Question, error)
	// CreateChoice returns ErrNotFound if the question does not exist.
	CreateChoice(ctx context.Context, questionID int64, text string) (models.Choice, error)
	// Choices returns the question's choices ordered by ID.
	Choices(ctx context.Context, questionID int64) ([]models.Choice, error)
	// IncrementVotes adds one vote to the choice. Returns ErrNotFound if the
	// choice does not belong to the question.
	IncrementVotes(ctx context.Context, questionID, choiceID int64) error
}
