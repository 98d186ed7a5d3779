// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls applies the publication rules to stored questions.

A question is visible once its pub_date is at or before the current
instant. Nothing about publication is stored; the service reads its clock
on every call and filters with models.FilterVisible:

	svc := polls.New(store.NewSQLStore(conn), polls.WithIndexLimit(5))
	latest, err := svc.LatestQuestions(ctx)

Detail lookups return ErrNotFound for unknown and unpublished questions
alike, so callers cannot tell a scheduled question from a missing one:

	q, err := svc.Question(ctx, id)
	if errors.Is(err, polls.ErrNotFound) {
		// 404
	}

Vote, CreateQuestion and AddChoice cover the rest of the app. Input
validation failures are *ValidationError values matching ErrInvalidArgument.
*/
package polls
