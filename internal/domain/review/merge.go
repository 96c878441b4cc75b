// Package review holds the merge rules for a product's embedded review list.
// The list carries one invariant: at most one review per distinct reviewer
// email, matched exactly and case-sensitively. Both functions are pure; the
// persistence layer decides how their results reach the store.
package review

import (
	"errors"

	"bazar/internal/domain/entity"
)

// ErrNotFound is returned by Remove when no review carries the given email.
var ErrNotFound = errors.New("review not found")

// Find returns the first review carried under the given email, reporting
// whether one exists.
func Find(existing []entity.Review, email string) (entity.Review, bool) {
	for _, rev := range existing {
		if rev.Email == email {
			return rev, true
		}
	}

	return entity.Review{}, false
}

// Upsert returns the review list that results from submitting incoming.
// If a review with incoming's email already exists, the first such entry is
// replaced in place and every other element keeps its position; repeated
// submissions by the same reviewer overwrite rather than accumulate.
// Otherwise incoming is appended. The input slice is never mutated.
func Upsert(existing []entity.Review, incoming entity.Review) []entity.Review {
	for i, rev := range existing {
		if rev.Email == incoming.Email {
			merged := make([]entity.Review, len(existing))
			copy(merged, existing)
			merged[i] = incoming

			return merged
		}
	}

	merged := make([]entity.Review, 0, len(existing)+1)
	merged = append(merged, existing...)

	return append(merged, incoming)
}

// Remove returns the review list without the first review whose email equals
// the given one, preserving the relative order of the rest. It returns
// ErrNotFound when no review matches; the input slice is never mutated.
func Remove(existing []entity.Review, email string) ([]entity.Review, error) {
	for i, rev := range existing {
		if rev.Email == email {
			remaining := make([]entity.Review, 0, len(existing)-1)
			remaining = append(remaining, existing[:i]...)

			return append(remaining, existing[i+1:]...), nil
		}
	}

	return nil, ErrNotFound
}
