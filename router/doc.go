// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

# Route Registration

NewRouter creates a chi router with all endpoints and the router-wide
middleware chain (request ID, metrics, panic recovery, timeout):

	handler := router.NewRouter(db, cfg)

# Endpoints

Operational:

	GET /         - Redirect to /polls/
	GET /health   - Liveness, plain "OK"
	GET /metrics  - Prometheus exposition

Pages (HTML):

	GET  /polls/                          - Latest published questions
	GET  /polls/{questionID}/             - Question detail and vote form
	GET  /polls/{questionID}/results/     - Vote counts
	POST /polls/{questionID}/vote/        - Record a vote

JSON API (CORS enabled):

	GET  /api/questions                        - Published questions
	POST /api/questions                        - Create or schedule a question
	GET  /api/questions/{questionID}           - Published question with choices
	POST /api/questions/{questionID}/choices   - Add a choice

Unsupported methods on known paths answer 405.

# Handler Initialization

One polls.Service backed by store.SQLStore is shared by both handler
types. The index page length comes from cfg.IndexLimit.
*/
package router
