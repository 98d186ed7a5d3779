// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/pollsite/logctx"
	"github.com/danielhkuo/pollsite/metrics"
	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/store"
)

var (
	// ErrNotFound covers both missing and not-yet-published questions.
	ErrNotFound = errors.New("question not found")
	// ErrChoiceNotFound means the choice is not one of the question's.
	ErrChoiceNotFound = errors.New("choice not found")
	// ErrInvalidArgument wraps validation failures on authoring input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service applies the publication rules on top of a QuestionStore.
// "Now" is read from the clock on every call.
type Service struct {
	store      store.QuestionStore
	now        func() time.Time
	indexLimit int
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIndexLimit caps LatestQuestions; 0 means no cap.
func WithIndexLimit(n int) Option {
	return func(s *Service) { s.indexLimit = n }
}

func New(st store.QuestionStore, opts ...Option) *Service {
	s := &Service{store: st, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current instant.
func (s *Service) Now() time.Time {
	return s.now()
}

// LatestQuestions returns the published questions for the index page,
// most recent first, capped at the index limit.
func (s *Service) LatestQuestions(ctx context.Context) ([]models.Question, error) {
	const op = "polls.LatestQuestions"

	visible, err := s.VisibleQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.indexLimit > 0 && len(visible) > s.indexLimit {
		visible = visible[:s.indexLimit]
	}

	return visible, nil
}

// VisibleQuestions returns every published question, most recent first.
func (s *Service) VisibleQuestions(ctx context.Context) ([]models.Question, error) {
	const op = "polls.VisibleQuestions"

	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		logctx.From(ctx).Error("list_questions_failed", slog.String("op", op), slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return models.FilterVisible(all, s.now()), nil
}

// Question returns a published question. Unknown and future questions
// both yield ErrNotFound.
func (s *Service) Question(ctx context.Context, id int64) (models.Question, error) {
	const op = "polls.Question"

	q, err := s.store.QuestionByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Question{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		logctx.From(ctx).Error("question_lookup_failed",
			slog.String("op", op),
			slog.Int64("id", id),
			slog.String("err", err.Error()),
		)
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	if !q.IsPublished(s.now()) {
		logctx.From(ctx).Debug("question_not_published", slog.String("op", op), slog.Int64("id", id))
		return models.Question{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return q, nil
}

// QuestionWithChoices is Question plus the question's choices.
func (s *Service) QuestionWithChoices(ctx context.Context, id int64) (models.Question, []models.Choice, error) {
	const op = "polls.QuestionWithChoices"

	q, err := s.Question(ctx, id)
	if err != nil {
		return models.Question{}, nil, err
	}

	choices, err := s.store.Choices(ctx, id)
	if err != nil {
		return models.Question{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return q, choices, nil
}

// Vote adds one vote to a choice of a published question.
func (s *Service) Vote(ctx context.Context, questionID, choiceID int64) error {
	const op = "polls.Vote"

	if _, err := s.Question(ctx, questionID); err != nil {
		return err
	}

	err := s.store.IncrementVotes(ctx, questionID, choiceID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrChoiceNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.Votes.Inc()
	logctx.From(ctx).Info("vote_recorded",
		slog.Int64("question_id", questionID),
		slog.Int64("choice_id", choiceID),
	)

	return nil
}

// CreateQuestion stores a new question. A zero pubDate publishes it now.
func (s *Service) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	const op = "polls.CreateQuestion"

	text = strings.TrimSpace(text)
	if err := validateText("question_text", text, models.MaxQuestionTextLen); err != nil {
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}
	if pubDate.IsZero() {
		pubDate = s.now()
	}

	q, err := s.store.CreateQuestion(ctx, text, pubDate)
	if err != nil {
		return models.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	logctx.From(ctx).Info("question_created",
		slog.Int64("id", q.ID),
		slog.Time("pub_date", q.PubDate),
	)

	return q, nil
}

// AddChoice adds a choice to any existing question, published or not.
func (s *Service) AddChoice(ctx context.Context, questionID int64, text string) (models.Choice, error) {
	const op = "polls.AddChoice"

	text = strings.TrimSpace(text)
	if err := validateText("choice_text", text, models.MaxChoiceTextLen); err != nil {
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.store.CreateChoice(ctx, questionID, text)
	if errors.Is(err, store.ErrNotFound) {
		return models.Choice{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return models.Choice{}, fmt.Errorf("%s: %w", op, err)
	}

	logctx.From(ctx).Info("choice_added",
		slog.Int64("question_id", questionID),
		slog.Int64("choice_id", c.ID),
	)

	return c, nil
}

// ValidationError describes a rejected authoring field. It matches
// ErrInvalidArgument under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func validateText(field, text string, limit int) error {
	if text == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	if utf8.RuneCountInString(text) > limit {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", limit)}
	}
	return nil
}
