// Package sequence allocates the human-readable enquiry numbers. Numbers are
// "<prefix><n>" with strictly increasing n per prefix; uniqueness is enforced
// by the store's unique index, not by any in-process lock.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

// Prefix is the fixed literal every enquiry number starts with.
const Prefix = "Enquiry_"

// maxAttempts caps the read-allocate-insert retry loop under contention.
const maxAttempts = 5

// Store is the slice of the enquiry collection the allocator needs.
type Store interface {
	// LatestNumber returns the enquiryNumber of the most recently created
	// enquiry whose number starts with prefix, or "" when none exists.
	LatestNumber(ctx context.Context, prefix string) (string, error)

	// Insert persists the enquiry. A unique-index violation on
	// enquiryNumber must come back wrapping apperrors.ErrDuplicateKey.
	Insert(ctx context.Context, e *models.Enquiry) error
}

type Allocator struct {
	store Store
}

func NewAllocator(store Store) *Allocator {
	return &Allocator{store: store}
}

// Create assigns the next enquiry number and persists e. Two concurrent
// callers can read the same latest value and race to insert the same number;
// the loser's duplicate-key error restarts the loop from the read step. The
// loop is bounded: past maxAttempts the caller gets ErrSequenceContention.
func (a *Allocator) Create(ctx context.Context, e *models.Enquiry) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		latest, err := a.store.LatestNumber(ctx, Prefix)
		if err != nil {
			return err
		}

		next := 1
		if latest != "" {
			n, err := trailingNumber(latest)
			if err != nil {
				// An existing malformed number is data corruption,
				// not a reason to restart the sequence at 1.
				return fmt.Errorf("%w: %q", apperrors.ErrCorruptSequence, latest)
			}
			next = n + 1
		}

		e.EnquiryNumber = Prefix + strconv.Itoa(next)
		err = a.store.Insert(ctx, e)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrDuplicateKey) {
			return err
		}
	}
	return apperrors.ErrSequenceContention
}

// trailingNumber parses the run of digits at the end of an enquiry number.
func trailingNumber(number string) (int, error) {
	i := len(number)
	for i > 0 && number[i-1] >= '0' && number[i-1] <= '9' {
		i--
	}
	if i == len(number) {
		return 0, fmt.Errorf("no trailing digits in %q", number)
	}
	return strconv.Atoi(number[i:])
}
