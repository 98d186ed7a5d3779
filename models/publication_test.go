// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"testing"
	"time"
)

const day = 24 * time.Hour

func TestWasPublishedRecently(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"future by 30 days", now.Add(30 * day), false},
		{"future by a nanosecond", now.Add(time.Nanosecond), false},
		{"exactly now", now, true},
		{"one hour ago", now.Add(-time.Hour), true},
		{"just inside the window", now.Add(-day + time.Second), true},
		{"exactly one day ago", now.Add(-day), false},
		{"just outside the window", now.Add(-day - time.Nanosecond), false},
		{"30 days ago", now.Add(-30 * day), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{QuestionText: "Who is the best course director?", PubDate: tt.pubDate}
			if got := q.WasPublishedRecently(now); got != tt.want {
				t.Errorf("WasPublishedRecently() = %v, want %v (pub_date %v, now %v)", got, tt.want, tt.pubDate, now)
			}
		})
	}
}

func TestWasPublishedRecently_OtherTimezone(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	tz := time.FixedZone("UTC-5", -5*60*60)

	// Same instant expressed in another zone
	q := Question{PubDate: now.In(tz)}
	if !q.WasPublishedRecently(now) {
		t.Error("expected the same instant in another timezone to count as recent")
	}
}

func TestIsPublished(t *testing.T) {
	now := time.Now()

	if !(Question{PubDate: now}).IsPublished(now) {
		t.Error("question published exactly now should be visible")
	}
	if !(Question{PubDate: now.Add(-10 * day)}).IsPublished(now) {
		t.Error("past question should be visible")
	}
	if (Question{PubDate: now.Add(time.Millisecond)}).IsPublished(now) {
		t.Error("future question should not be visible")
	}
}

func TestFilterVisible(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	past30 := Question{ID: 1, QuestionText: "Past question 1", PubDate: now.Add(-30 * day)}
	past40 := Question{ID: 2, QuestionText: "Past question 2", PubDate: now.Add(-40 * day)}
	future30 := Question{ID: 3, QuestionText: "Future question 1", PubDate: now.Add(30 * day)}
	future40 := Question{ID: 4, QuestionText: "Future question 2", PubDate: now.Add(40 * day)}
	current := Question{ID: 5, QuestionText: "Now", PubDate: now}

	tests := []struct {
		name  string
		input []Question
		want  []int64
	}{
		{"empty input", nil, []int64{}},
		{"only future", []Question{future30, future40}, []int64{}},
		{"single past", []Question{past30}, []int64{1}},
		{"past and future", []Question{past30, future30}, []int64{1}},
		{"two past, most recent first", []Question{past40, past30}, []int64{1, 2}},
		{"boundary now is visible", []Question{future30, current, past30}, []int64{5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVisible(tt.input, now)
			if got == nil {
				t.Fatal("FilterVisible() returned nil, want empty slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("FilterVisible() returned %d questions, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: got question %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterVisible_TieBreaksOnID(t *testing.T) {
	now := time.Now()
	pub := now.Add(-time.Hour)

	got := FilterVisible([]Question{{ID: 7, PubDate: pub}, {ID: 9, PubDate: pub}, {ID: 8, PubDate: pub}}, now)

	want := []int64{9, 8, 7}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestFilterVisible_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	input := []Question{
		{ID: 1, PubDate: now.Add(-40 * day)},
		{ID: 2, PubDate: now.Add(30 * day)},
		{ID: 3, PubDate: now.Add(-30 * day)},
	}

	FilterVisible(input, now)

	for i, id := range []int64{1, 2, 3} {
		if input[i].ID != id {
			t.Errorf("input reordered at %d: got %d, want %d", i, input[i].ID, id)
		}
	}
}

func TestNewQuestionResponse(t *testing.T) {
	now := time.Now()

	recent := NewQuestionResponse(Question{ID: 1, PubDate: now.Add(-time.Hour)}, now)
	if !recent.WasPublishedRecently {
		t.Error("expected recent question to be flagged")
	}

	old := NewQuestionResponse(Question{ID: 2, PubDate: now.Add(-2 * day)}, now)
	if old.WasPublishedRecently {
		t.Error("expected old question not to be flagged")
	}
}

func TestTotalVotes(t *testing.T) {
	choices := []Choice{{Votes: 3}, {Votes: 0}, {Votes: 4}}
	if got := TotalVotes(choices); got != 7 {
		t.Errorf("TotalVotes() = %d, want 7", got)
	}
	if got := TotalVotes(nil); got != 0 {
		t.Errorf("TotalVotes(nil) = %d, want 0", got)
	}
}
