// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/pollsite/logctx"
	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/polls"
	"github.com/danielhkuo/pollsite/render"
)

// QuestionIDParam is the chi URL parameter holding the question id.
const QuestionIDParam = "questionID"

const noChoiceMessage = "You didn't select a choice."

type QuestionHandler struct {
	svc      *polls.Service
	renderer render.Renderer
}

func NewQuestionHandler(svc *polls.Service, renderer render.Renderer) *QuestionHandler {
	return &QuestionHandler{svc: svc, renderer: renderer}
}

// Index handles GET /polls/
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.LatestQuestions(r.Context())
	if err != nil {
		serverError(w, r, "failed to list questions", err)
		return
	}

	h.render(w, r, http.StatusOK, render.IndexPage, models.IndexPage{LatestQuestionList: questions})
}

// Detail handles GET /polls/{questionID}/
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.detail(w, r, id, "")
}

// Results handles GET /polls/{questionID}/results/
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	q, choices, err := h.svc.QuestionWithChoices(r.Context(), id)
	if errors.Is(err, polls.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, "failed to load results", err)
		return
	}

	h.render(w, r, http.StatusOK, render.ResultsPage, models.ResultsPage{
		Question:   q,
		Choices:    choices,
		TotalVotes: models.TotalVotes(choices),
	})
}

// Vote handles POST /polls/{questionID}/vote/
// A missing or foreign choice redisplays the form with an error message.
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	choiceID, err := strconv.ParseInt(r.PostForm.Get("choice"), 10, 64)
	if err != nil {
		h.detail(w, r, id, noChoiceMessage)
		return
	}

	err = h.svc.Vote(r.Context(), id, choiceID)
	switch {
	case err == nil:
		// Redirect so a browser refresh doesn't post the vote twice
		http.Redirect(w, r, fmt.Sprintf("/polls/%d/results/", id), http.StatusSeeOther)
	case errors.Is(err, polls.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, polls.ErrChoiceNotFound):
		h.detail(w, r, id, noChoiceMessage)
	default:
		serverError(w, r, "failed to record vote", err)
	}
}

func (h *QuestionHandler) detail(w http.ResponseWriter, r *http.Request, id int64, errorMessage string) {
	q, choices, err := h.svc.QuestionWithChoices(r.Context(), id)
	if errors.Is(err, polls.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, "failed to load question", err)
		return
	}

	h.render(w, r, http.StatusOK, render.DetailPage, models.DetailPage{
		Question:     q,
		Choices:      choices,
		ErrorMessage: errorMessage,
	})
}

func (h *QuestionHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.renderer.Render(w, status, name, data); err != nil {
		serverError(w, r, "failed to render page", err)
	}
}

// questionID parses the id path parameter. Anything that isn't a
// positive integer can't name a question.
func questionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, QuestionIDParam), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logctx.From(r.Context()).Error(msg,
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
