// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, response, and page types.

# Domain Types

  - Question: question_text and pub_date
  - Choice: choice_text and vote count for a question

# Publication

Publication state is never stored. It is derived from pub_date against the
instant the caller passes in:

	q.IsPublished(now)          // pub_date <= now
	q.WasPublishedRecently(now) // now - 24h < pub_date <= now

FilterVisible applies the same rule to a slice and orders the result most
recent first:

	visible := models.FilterVisible(all, time.Now())

# Request Types

  - CreateQuestionRequest: question_text, pub_date (optional)
  - AddChoiceRequest: choice_text

# Response Types

  - QuestionResponse: question plus was_published_recently
  - QuestionDetailResponse: question plus choices
  - QuestionListResponse: questions
  - ErrorResponse: error, message

# Page Types

Template data for the HTML views:

  - IndexPage: LatestQuestionList
  - DetailPage: Question, Choices, ErrorMessage
  - ResultsPage: Question, Choices, TotalVotes
*/
package models
