// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/handlers"
	"github.com/danielhkuo/pollsite/metrics"
	"github.com/danielhkuo/pollsite/middleware"
	"github.com/danielhkuo/pollsite/polls"
	"github.com/danielhkuo/pollsite/render"
	"github.com/danielhkuo/pollsite/store"
)

// baseMiddleware is the router-wide chain, outermost first. Metrics sits
// outside Recover so recovered panics are counted as 500s.
func baseMiddleware(cfg cliparse.Config) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(slog.Default()),
		middleware.Metrics,
		middleware.Recover,
		middleware.Timeout(cfg.RequestTimeout),
	}
}

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(baseMiddleware(cfg)...)

	// Initialize handlers
	svc := polls.New(store.NewSQLStore(db), polls.WithIndexLimit(cfg.IndexLimit))
	questionHandler := handlers.NewQuestionHandler(svc, render.New(render.WithClock(svc.Now)))
	apiHandler := handlers.NewAPIHandler(svc)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Pages
	r.Get("/polls/", middleware.WithLogging(questionHandler.Index))
	r.Get("/polls/{questionID}/", middleware.WithLogging(questionHandler.Detail))
	r.Get("/polls/{questionID}/results/", middleware.WithLogging(questionHandler.Results))
	r.Post("/polls/{questionID}/vote/", middleware.WithLogging(questionHandler.Vote))

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS)

		r.Get("/questions", middleware.WithLogging(apiHandler.ListQuestions))
		r.Post("/questions", middleware.WithLogging(apiHandler.CreateQuestion))
		r.Get("/questions/{questionID}", middleware.WithLogging(apiHandler.GetQuestion))
		r.Post("/questions/{questionID}/choices", middleware.WithLogging(apiHandler.AddChoice))
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return r
}
