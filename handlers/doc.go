// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the polls site.

# Handler Types

Handlers are structs built on a *polls.Service:

  - QuestionHandler: server-rendered pages (index, detail, results, vote)
  - APIHandler: JSON API for listing, reading and authoring questions

	svc := polls.New(store.NewSQLStore(db), polls.WithIndexLimit(cfg.IndexLimit))
	pages := handlers.NewQuestionHandler(svc, render.New(render.WithClock(svc.Now)))
	api := handlers.NewAPIHandler(svc)

Path parameters are read with chi.URLParam under QuestionIDParam.

# Pages

	GET  /polls/                → Index (latest published questions)
	GET  /polls/{id}/           → Detail (vote form)
	GET  /polls/{id}/results/   → Results (vote counts)
	POST /polls/{id}/vote/      → Vote (303 to results)

Questions with a pub_date in the future are invisible: they are left off
the index and every per-question page answers 404, exactly as if the id
did not exist. An id that isn't a positive integer is also a 404.

Posting without a valid choice re-renders the detail page with
"You didn't select a choice."

# JSON API

	GET  /api/questions               → ListQuestions
	GET  /api/questions/{id}          → GetQuestion
	POST /api/questions               → CreateQuestion (pub_date optional)
	POST /api/questions/{id}/choices  → AddChoice

Reads apply the same publication gate as the pages. Writes may target
scheduled questions so choices can be prepared ahead of time.

Errors are returned as models.ErrorResponse:

	400 validation failure or malformed JSON
	404 question missing or not yet published
	500 storage failure (logged, details not exposed)
*/
package handlers
