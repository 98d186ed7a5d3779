// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pollsite/logctx"
	"github.com/danielhkuo/pollsite/middleware"
	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/polls"
)

type APIHandler struct {
	svc *polls.Service
}

func NewAPIHandler(svc *polls.Service) *APIHandler {
	return &APIHandler{svc: svc}
}

// ListQuestions handles GET /api/questions
func (h *APIHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.VisibleQuestions(r.Context())
	if err != nil {
		internalError(w, r, "failed to list questions", err)
		return
	}

	now := h.svc.Now()
	resp := models.QuestionListResponse{Questions: make([]models.QuestionResponse, 0, len(questions))}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, models.NewQuestionResponse(q, now))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetQuestion handles GET /api/questions/{questionID}
func (h *APIHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	q, choices, err := h.svc.QuestionWithChoices(r.Context(), id)
	if errors.Is(err, polls.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		internalError(w, r, "failed to load question", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionDetailResponse{
		QuestionResponse: models.NewQuestionResponse(q, h.svc.Now()),
		Choices:          choices,
	})
}

// CreateQuestion handles POST /api/questions
// Questions may be scheduled by passing a future pub_date.
func (h *APIHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var pubDate time.Time
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	q, err := h.svc.CreateQuestion(r.Context(), req.QuestionText, pubDate)
	if err != nil {
		var ve *polls.ValidationError
		if errors.As(err, &ve) {
			middleware.ErrorResponse(w, http.StatusBadRequest, ve.Error())
			return
		}
		internalError(w, r, "failed to create question", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.NewQuestionResponse(q, h.svc.Now()))
}

// AddChoice handles POST /api/questions/{questionID}/choices
func (h *APIHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, err := h.svc.AddChoice(r.Context(), id, req.ChoiceText)
	if err != nil {
		var ve *polls.ValidationError
		switch {
		case errors.As(err, &ve):
			middleware.ErrorResponse(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, polls.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		default:
			internalError(w, r, "failed to add choice", err)
		}
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, c)
}

func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logctx.From(r.Context()).Error(msg,
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
}
