// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Env: local, dev or prod; selects the log handler (default: local)
  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string; required for postgres,
    defaults to pollsite.db for sqlite
  - IndexLimit: questions on the index page, 0 for all (default: 0)
  - RequestTimeout: per-request deadline (default: 5s)

# Sources

Highest precedence first:

  1. CLI flags
  2. Environment variables (a .env file is loaded first, without
     overriding variables that are already set)
  3. YAML file given with -c or CONFIG_PATH
  4. Defaults

# CLI Flags

	-c            YAML config file
	-env-file     dotenv file (default .env)
	-p            Server port
	-d            Database URL
	-t            Database type
	-index-limit  Questions on the index page

# Environment Variables

	ENV, PORT, DATABASE_URL, DATABASE_TYPE, INDEX_LIMIT, REQUEST_TIMEOUT

# Example YAML

	env: prod
	port: 8080
	database_type: postgres
	database_url: postgres://polls:secret@db:5432/polls?sslmode=disable
	index_limit: 10
	request_timeout: 3s
*/
package cliparse
