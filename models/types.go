// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Field limits
const (
	MaxQuestionTextLen = 200
	MaxChoiceTextLen   = 200
)

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// Request types

// PubDate is optional; a missing value means "publish now".
type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

// Response types

type QuestionResponse struct {
	Question
	WasPublishedRecently bool `json:"was_published_recently"`
}

type QuestionDetailResponse struct {
	QuestionResponse
	Choices []Choice `json:"choices"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// Page types, handed to the HTML templates

type IndexPage struct {
	LatestQuestionList []Question
}

type DetailPage struct {
	Question     Question
	Choices      []Choice
	ErrorMessage string
}

type ResultsPage struct {
	Question   Question
	Choices    []Choice
	TotalVotes int
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
