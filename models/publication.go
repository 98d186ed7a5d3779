// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"sort"
	"time"
)

// RecentWindow is how far back a publication still counts as recent.
const RecentWindow = 24 * time.Hour

// IsPublished reports whether q is visible at now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// WasPublishedRecently reports whether q was published in (now - 1 day, now].
func (q Question) WasPublishedRecently(now time.Time) bool {
	return q.IsPublished(now) && q.PubDate.After(now.Add(-RecentWindow))
}

// FilterVisible returns the questions published at or before now,
// most recent first. Ties on pub_date fall back to the higher ID.
// The input slice is left untouched.
func FilterVisible(questions []Question, now time.Time) []Question {
	visible := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.IsPublished(now) {
			visible = append(visible, q)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if !visible[i].PubDate.Equal(visible[j].PubDate) {
			return visible[i].PubDate.After(visible[j].PubDate)
		}
		return visible[i].ID > visible[j].ID
	})

	return visible
}

// NewQuestionResponse decorates q with its derived flags at now.
func NewQuestionResponse(q Question, now time.Time) QuestionResponse {
	return QuestionResponse{
		Question:             q,
		WasPublishedRecently: q.WasPublishedRecently(now),
	}
}

// TotalVotes sums the votes across choices.
func TotalVotes(choices []Choice) int {
	total := 0
	for _, c := range choices {
		total += c.Votes
	}
	return total
}
