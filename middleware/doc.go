// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Router-wide Middleware

Installed once on the chi router, outermost first:

	r.Use(
		middleware.RequestID(logger),
		middleware.Metrics,
		middleware.Recover,
		middleware.Timeout(cfg.RequestTimeout),
	)

  - RequestID: honours or generates X-Request-Id (UUID) and stores a
    request-scoped slog logger in the context (see package logctx)
  - Metrics: Prometheus request counter and latency histogram by chi route
    pattern; outside Recover so recovered panics count as 500s
  - Recover: converts panics to a 500 JSON error, logged with the request ID
  - Timeout: request deadline unless one is already set

# Per-handler Logging

WithLogging wraps individual handlers:

	r.Get("/polls/", middleware.WithLogging(h.Index))

Logs "request started" and "request completed" with method, path,
client IP, status, bytes and duration.

# CORS

CORS wraps the JSON API subrouter and answers preflight requests.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
	err := middleware.ParseJSONBody(r, &req)

ParseJSONBody rejects unknown fields.

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
