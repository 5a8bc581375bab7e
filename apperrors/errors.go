// Package apperrors defines the error taxonomy shared by services and
// controllers. Services return these; controllers map them to HTTP statuses.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey wraps a unique-index violation (name, email, sku,
	// enquiryNumber).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidType is returned for a priority type outside
	// {Category, Subcategory, Brand}.
	ErrInvalidType = errors.New("invalid priority type")

	// ErrReferentNotFound means a priority's objectId does not resolve in
	// the collection its type selects.
	ErrReferentNotFound = errors.New("referenced record not found")

	// ErrDuplicatePriority means a priority already exists for the same
	// (type, objectId) pair.
	ErrDuplicatePriority = errors.New("priority already exists for this reference")

	// ErrValidation covers schema constraint violations (negative price,
	// missing required field, bad enum value).
	ErrValidation = errors.New("validation failed")

	// ErrCorruptSequence means the latest stored enquiry number carries the
	// prefix but no parseable trailing digits. This is surfaced, never
	// silently reset.
	ErrCorruptSequence = errors.New("corrupt enquiry number sequence")

	// ErrSequenceContention means enquiry number allocation kept colliding
	// past the retry cap.
	ErrSequenceContention = errors.New("enquiry number allocation contention")
)

// ReferencedConflictError blocks a delete while products still reference the
// target. Count and Samples let callers report "N products depend on this"
// without a follow-up query.
type ReferencedConflictError struct {
	Count   int64
	Samples []string
}

func (e *ReferencedConflictError) Error() string {
	return fmt.Sprintf("%d product(s) still reference this record", e.Count)
}

// Validation wraps ErrValidation with a human-readable reason.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
