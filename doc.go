// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollsite server.

pollsite serves scheduled poll questions. A question becomes visible once
its pub_date has passed; until then it is left off every list and every
direct lookup answers 404. Visitors vote on the published questions and
see the running results.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or point it at PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t sqlite -d pollsite.db

# Configuration

Settings come from flags, then the environment (optionally seeded from a
.env file), then an optional YAML file (-c or CONFIG_PATH), then defaults:

  - ENV: local, dev or prod; picks the log format (default: local)
  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN; defaults to pollsite.db for SQLite
  - INDEX_LIMIT (-index-limit): questions on the index page, 0 for all (default: 0)
  - REQUEST_TIMEOUT: per-request deadline (default: 5s)

# Architecture

  - handlers: HTTP pages and JSON API
  - router: chi routes and middleware chain
  - middleware: request ID, recovery, metrics, timeout, CORS, logging, JSON helpers
  - polls: publication rules and voting
  - store: SQL persistence
  - render: embedded HTML templates
  - models: domain, request and response types
  - db: connection and schema creation
  - cliparse: configuration parsing
  - metrics: Prometheus collectors
  - logctx: request-scoped loggers

See package documentation for each component.
*/
package main
