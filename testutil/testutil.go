// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/db"
	"github.com/danielhkuo/pollsite/models"
)

// Day is the unit CreateQuestion offsets are expressed in
const Day = 24 * time.Hour

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The pool is capped at one connection so every query sees the same
// in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Env:            cliparse.EnvLocal,
		Port:           3318,
		DatabaseType:   cliparse.DatabaseSQLite,
		DatabaseURL:    ":memory:",
		IndexLimit:     0,
		RequestTimeout: 5 * time.Second,
	}
}

// CreateQuestion creates a question published the given number of days
// offset to now (negative for questions published in the past, positive
// for questions that have not been published yet).
func CreateQuestion(t *testing.T, conn *sql.DB, text string, days int) models.Question {
	t.Helper()
	return CreateQuestionAt(t, conn, text, time.Now().Add(time.Duration(days)*Day))
}

// CreateQuestionAt creates a question with an explicit pub_date
func CreateQuestionAt(t *testing.T, conn *sql.DB, text string, pubDate time.Time) models.Question {
	t.Helper()

	q := models.Question{QuestionText: text, PubDate: pubDate.UTC()}
	err := conn.QueryRow(`
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.QuestionText, q.PubDate).Scan(&q.ID)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return q
}

// AddTestChoice adds a choice to a question and returns it
func AddTestChoice(t *testing.T, conn *sql.DB, questionID int64, text string) models.Choice {
	t.Helper()

	c := models.Choice{QuestionID: questionID, ChoiceText: text}
	err := conn.QueryRow(`
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&c.ID)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return c
}

// GetVotes reads the current vote count of a choice
func GetVotes(t *testing.T, conn *sql.DB, choiceID int64) int {
	t.Helper()

	var votes int
	if err := conn.QueryRow(`SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}
	return votes
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a form-encoded POST request
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertNotContains checks that the response body does not contain text
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body not to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
