// Copyright (c) 2026 The awsassist Authors.
// SPDX-License-Identifier: Apache-2.0

package paginate

import (
	"context"
	"iter"

	"github.com/awsassist/awsassist/internal/log"
)

// Page is one response of a paginated listing call. Next is the continuation
// token for the following page; nil or empty means the listing is complete.
type Page[T any] struct {
	Items []T
	Next  *string
}

// Fetcher performs one remote listing call. token is nil on the first call and
// carries the previous page's Next afterwards. The query itself (bucket,
// prefix, repository) is captured by the closure and fixed for the whole
// iteration.
type Fetcher[T any] func(ctx context.Context, token *string) (Page[T], error)

// ListAll drives fetch until a page arrives without a continuation token and
// returns the items of every page concatenated in call order. The first error
// aborts the listing and no partial result is returned.
func ListAll[T any](ctx context.Context, fetch Fetcher[T]) ([]T, error) {
	results := []T{}
	for page, err := range Pages(ctx, fetch) {
		if err != nil {
			return nil, err
		}
		results = append(results, page.Items...)
	}
	return results, nil
}

// Pages returns a lazy sequence of pages. Each range over the sequence starts
// a fresh listing from the first page. After an error is yielded the sequence
// ends. Breaking out of the range stops further remote calls.
func Pages[T any](ctx context.Context, fetch Fetcher[T]) iter.Seq2[Page[T], error] {
	return func(yield func(Page[T], error) bool) {
		var token *string
		for n := 1; ; n++ {
			page, err := fetch(ctx, token)
			if err != nil {
				log.Debugf("page fetch failed: page=%d, err=%v", n, err)
				yield(Page[T]{}, err)
				return
			}
			log.Tracef("page fetched: page=%d, items=%d", n, len(page.Items))

			if !yield(page, nil) {
				return
			}

			if !HasMore(page.Next) {
				return
			}
			token = page.Next
		}
	}
}

// HasMore reports whether a continuation token asks for another page.
func HasMore(token *string) bool {
	return token != nil && *token != ""
}
