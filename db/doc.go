// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and handles schema creation.

# Drivers

Two database/sql drivers are registered:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

Open picks the driver from the config and pings the connection:

	conn, err := db.Open(ctx, cfg)

SQLite connections are limited to one open connection and get foreign
keys plus a busy timeout through DSN pragmas.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question_text, pub_date
  - choice: choice_text and vote count per question

# Relationships

	question 1──* choice

The foreign key uses ON DELETE CASCADE. There is no "published" column:
visibility is computed from pub_date when a question is read.

# Indexes

  - question.pub_date
  - choice.question_id
*/
package db
