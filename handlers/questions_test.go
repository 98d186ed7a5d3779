// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/polls"
	"github.com/danielhkuo/pollsite/render"
	"github.com/danielhkuo/pollsite/store"
	"github.com/danielhkuo/pollsite/testutil"
)

// captureRenderer records the template context handed to the real renderer
type captureRenderer struct {
	render.Renderer
	name string
	data any
}

func (c *captureRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	c.name = name
	c.data = data
	return c.Renderer.Render(w, status, name, data)
}

func newTestService(conn *sql.DB, opts ...polls.Option) *polls.Service {
	cfg := testutil.GetTestConfig()
	opts = append([]polls.Option{polls.WithIndexLimit(cfg.IndexLimit)}, opts...)
	return polls.New(store.NewSQLStore(conn), opts...)
}

func setupQuestionHandler(t *testing.T, opts ...polls.Option) (*sql.DB, *QuestionHandler, *captureRenderer) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	svc := newTestService(conn, opts...)
	rec := &captureRenderer{Renderer: render.New(render.WithClock(svc.Now))}
	return conn, NewQuestionHandler(svc, rec), rec
}

// withQuestionID sets the chi URL parameter the way the router would
func withQuestionID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(QuestionIDParam, id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func latestQuestionList(t *testing.T, rec *captureRenderer) []string {
	t.Helper()
	page, ok := rec.data.(models.IndexPage)
	if !ok {
		t.Fatalf("Expected models.IndexPage context, got %T", rec.data)
	}
	texts := make([]string, len(page.LatestQuestionList))
	for i, q := range page.LatestQuestionList {
		texts[i] = q.QuestionText
	}
	return texts
}

func assertTexts(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestIndex_NoQuestions(t *testing.T) {
	_, h, rec := setupQuestionHandler(t)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "No polls are available.")
	assertTexts(t, latestQuestionList(t, rec), []string{})
}

func TestIndex_PastQuestion(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t)
	testutil.CreateQuestion(t, conn, "Past question.", -30)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertNotContains(t, w, "No polls are available.")
	assertTexts(t, latestQuestionList(t, rec), []string{"Past question."})
}

func TestIndex_FutureQuestion(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t)
	testutil.CreateQuestion(t, conn, "Future question.", 30)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "No polls are available.")
	testutil.AssertNotContains(t, w, "Future question.")
	assertTexts(t, latestQuestionList(t, rec), []string{})
}

func TestIndex_FutureAndPastQuestion(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t)
	testutil.CreateQuestion(t, conn, "Past question.", -30)
	testutil.CreateQuestion(t, conn, "Future question.", 30)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	assertTexts(t, latestQuestionList(t, rec), []string{"Past question."})
}

func TestIndex_TwoPastQuestions(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t)
	testutil.CreateQuestion(t, conn, "Past question 2.", -40)
	testutil.CreateQuestion(t, conn, "Past question 1.", -30)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	assertTexts(t, latestQuestionList(t, rec), []string{"Past question 1.", "Past question 2."})

	// Rendered order matches the context order
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	var rendered []string
	doc.Find("li.question a").Each(func(_ int, s *goquery.Selection) {
		rendered = append(rendered, s.Text())
	})
	assertTexts(t, rendered, []string{"Past question 1.", "Past question 2."})
}

func TestIndex_TwoFutureQuestions(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t)
	testutil.CreateQuestion(t, conn, "Future question 1.", 30)
	testutil.CreateQuestion(t, conn, "Future question 2.", 40)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	testutil.AssertContains(t, w, "No polls are available.")
	assertTexts(t, latestQuestionList(t, rec), []string{})
}

func TestIndex_ListsEveryVisibleQuestion(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t)
	want := []string{}
	for i := 1; i <= 7; i++ {
		text := fmt.Sprintf("Question %d.", i)
		testutil.CreateQuestion(t, conn, text, -i)
		want = append(want, text)
	}
	testutil.CreateQuestion(t, conn, "Future question.", 1)

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	assertTexts(t, latestQuestionList(t, rec), want)
}

func TestIndex_Limit(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t, polls.WithIndexLimit(5))
	for i := 1; i <= 7; i++ {
		testutil.CreateQuestion(t, conn, fmt.Sprintf("Question %d.", i), -i)
	}

	w := httptest.NewRecorder()
	h.Index(w, httptest.NewRequest("GET", "/polls/", nil))

	assertTexts(t, latestQuestionList(t, rec), []string{
		"Question 1.", "Question 2.", "Question 3.", "Question 4.", "Question 5.",
	})
}

func TestDetail(t *testing.T) {
	conn, h, _ := setupQuestionHandler(t)
	past := testutil.CreateQuestion(t, conn, "Past Question.", -5)
	future := testutil.CreateQuestion(t, conn, "Future question.", 5)
	testutil.AddTestChoice(t, conn, past.ID, "Not much")

	testCases := []struct {
		name       string
		id         string
		wantStatus int
		wantText   string
	}{
		{"past question", idString(past.ID), http.StatusOK, "Past Question."},
		{"future question", idString(future.ID), http.StatusNotFound, ""},
		{"missing question", "999", http.StatusNotFound, ""},
		{"non-numeric id", "abc", http.StatusNotFound, ""},
		{"zero id", "0", http.StatusNotFound, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := withQuestionID(httptest.NewRequest("GET", "/polls/"+tc.id+"/", nil), tc.id)
			w := httptest.NewRecorder()

			h.Detail(w, req)

			testutil.AssertStatus(t, w, tc.wantStatus)
			if tc.wantText != "" {
				testutil.AssertContains(t, w, tc.wantText)
				testutil.AssertContains(t, w, "Not much")
			} else {
				testutil.AssertNotContains(t, w, "Future question.")
			}
		})
	}
}

func TestResults(t *testing.T) {
	conn, h, rec := setupQuestionHandler(t)
	past := testutil.CreateQuestion(t, conn, "Past Question.", -5)
	future := testutil.CreateQuestion(t, conn, "Future question.", 5)
	c := testutil.AddTestChoice(t, conn, past.ID, "The sky")
	if _, err := conn.Exec(`UPDATE choice SET votes = 2 WHERE id = $1`, c.ID); err != nil {
		t.Fatalf("Failed to seed votes: %v", err)
	}

	t.Run("past question", func(t *testing.T) {
		req := withQuestionID(httptest.NewRequest("GET", "/", nil), idString(past.ID))
		w := httptest.NewRecorder()

		h.Results(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertContains(t, w, "The sky")
		page, ok := rec.data.(models.ResultsPage)
		if !ok {
			t.Fatalf("Expected models.ResultsPage, got %T", rec.data)
		}
		if page.TotalVotes != 2 {
			t.Errorf("Expected 2 total votes, got %d", page.TotalVotes)
		}
	})

	t.Run("future question", func(t *testing.T) {
		req := withQuestionID(httptest.NewRequest("GET", "/", nil), idString(future.ID))
		w := httptest.NewRecorder()

		h.Results(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func postVote(h *QuestionHandler, questionID int64, choice string) *httptest.ResponseRecorder {
	form := url.Values{}
	if choice != "" {
		form.Set("choice", choice)
	}
	path := "/polls/" + idString(questionID) + "/vote/"
	req := withQuestionID(testutil.MakeFormRequest(path, form), idString(questionID))
	w := httptest.NewRecorder()
	h.Vote(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc.Find(".error").Text()
}

func TestVote(t *testing.T) {
	conn, h, _ := setupQuestionHandler(t)
	q := testutil.CreateQuestion(t, conn, "What's new?", -1)
	choice := testutil.AddTestChoice(t, conn, q.ID, "Not much")

	w := postVote(h, q.ID, idString(choice.ID))

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	want := fmt.Sprintf("/polls/%d/results/", q.ID)
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Expected redirect to %s, got %s", want, loc)
	}
	if votes := testutil.GetVotes(t, conn, choice.ID); votes != 1 {
		t.Errorf("Expected 1 vote, got %d", votes)
	}
}

func TestVote_NoChoice(t *testing.T) {
	conn, h, _ := setupQuestionHandler(t)
	q := testutil.CreateQuestion(t, conn, "What's new?", -1)
	other := testutil.CreateQuestion(t, conn, "Other question", -1)
	choice := testutil.AddTestChoice(t, conn, q.ID, "Not much")
	foreign := testutil.AddTestChoice(t, conn, other.ID, "Elsewhere")

	testCases := []struct {
		name   string
		choice string
	}{
		{"missing", ""},
		{"not a number", "abc"},
		{"unknown id", "999"},
		{"choice of another question", idString(foreign.ID)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postVote(h, q.ID, tc.choice)

			testutil.AssertStatus(t, w, http.StatusOK)
			if msg := errorMessage(t, w); msg != "You didn't select a choice." {
				t.Errorf("Expected error message, got %q", msg)
			}
			testutil.AssertContains(t, w, "What&#39;s new?")
		})
	}

	if votes := testutil.GetVotes(t, conn, choice.ID); votes != 0 {
		t.Errorf("Expected no votes recorded, got %d", votes)
	}
	if votes := testutil.GetVotes(t, conn, foreign.ID); votes != 0 {
		t.Errorf("Expected foreign choice untouched, got %d", votes)
	}
}

func TestVote_FutureQuestion(t *testing.T) {
	conn, h, _ := setupQuestionHandler(t)
	q := testutil.CreateQuestion(t, conn, "Future question.", 3)
	choice := testutil.AddTestChoice(t, conn, q.ID, "Early")

	w := postVote(h, q.ID, idString(choice.ID))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// No choice on a future question is still a 404, not a re-render
	w = postVote(h, q.ID, "")
	testutil.AssertStatus(t, w, http.StatusNotFound)

	if votes := testutil.GetVotes(t, conn, choice.ID); votes != 0 {
		t.Errorf("Expected no votes, got %d", votes)
	}
}

// TestConcurrentVotes verifies that simultaneous voters don't lose updates
func TestConcurrentVotes(t *testing.T) {
	conn, h, _ := setupQuestionHandler(t)
	q := testutil.CreateQuestion(t, conn, "Tabs or spaces?", -1)
	choice := testutil.AddTestChoice(t, conn, q.ID, "Tabs")

	const numVoters = 20
	var wg sync.WaitGroup
	codes := make([]int, numVoters)

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = postVote(h, q.ID, idString(choice.ID)).Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusSeeOther {
			t.Errorf("Voter %d: expected 303, got %d", i, code)
		}
	}
	if votes := testutil.GetVotes(t, conn, choice.ID); votes != numVoters {
		t.Errorf("Expected %d votes, got %d", numVoters, votes)
	}
}
