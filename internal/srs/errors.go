package srs

import "errors"

// Sentinel errors for the srs package. Check with errors.Is.
var (
	// ErrInvalidRating is returned when a rating is outside the fixed set.
	// This is a caller error and must not be retried.
	ErrInvalidRating = errors.New("srs: invalid rating")

	// ErrItemDeleted is returned when rating a soft-deleted item.
	ErrItemDeleted = errors.New("srs: item already deleted")

	// ErrVersionConflict is returned when an optimistic update loses the
	// version check. The caller may refetch and retry.
	ErrVersionConflict = errors.New("srs: item version conflict")

	// ErrNoReviewLog is returned by undo when the item has never been rated.
	ErrNoReviewLog = errors.New("srs: no review log to undo")
)
