package sequence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

// memStore mimics the enquiries collection: insertion order is creation
// order, and the unique index on enquiryNumber rejects duplicates.
type memStore struct {
	mu      sync.Mutex
	numbers []string
	seen    map[string]bool
}

func newMemStore(existing ...string) *memStore {
	s := &memStore{seen: map[string]bool{}}
	for _, n := range existing {
		s.numbers = append(s.numbers, n)
		s.seen[n] = true
	}
	return s
}

func (s *memStore) LatestNumber(_ context.Context, prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.numbers) - 1; i >= 0; i-- {
		if strings.HasPrefix(s.numbers[i], prefix) {
			return s.numbers[i], nil
		}
	}
	return "", nil
}

func (s *memStore) Insert(_ context.Context, e *models.Enquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[e.EnquiryNumber] {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateKey, e.EnquiryNumber)
	}
	s.numbers = append(s.numbers, e.EnquiryNumber)
	s.seen[e.EnquiryNumber] = true
	return nil
}

func TestCreateFirstEnquiryStartsAtOne(t *testing.T) {
	store := newMemStore()
	alloc := NewAllocator(store)

	e := &models.Enquiry{Name: "First"}
	require.NoError(t, alloc.Create(context.Background(), e))
	assert.Equal(t, "Enquiry_1", e.EnquiryNumber)
}

func TestCreateIncrementsLatest(t *testing.T) {
	store := newMemStore("Enquiry_41")
	alloc := NewAllocator(store)

	e := &models.Enquiry{}
	require.NoError(t, alloc.Create(context.Background(), e))
	assert.Equal(t, "Enquiry_42", e.EnquiryNumber)
}

func TestConcurrentCreatesAllocateDistinctIncreasingNumbers(t *testing.T) {
	store := newMemStore()
	alloc := NewAllocator(store)

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = alloc.Create(context.Background(), &models.Enquiry{})
		}(i)
	}
	wg.Wait()

	// Under 20-way contention some creates may exhaust the retry cap;
	// every success must still hold a distinct number.
	var values []int
	for _, num := range store.numbers {
		v, err := strconv.Atoi(strings.TrimPrefix(num, Prefix))
		require.NoError(t, err, "number %q", num)
		values = append(values, v)
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		assert.Less(t, values[i-1], values[i], "numbers must be strictly increasing")
	}
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, apperrors.ErrSequenceContention)
		}
	}
	assert.NotEmpty(t, values)
}

func TestSequentialCreatesHaveNoDuplicates(t *testing.T) {
	store := newMemStore()
	alloc := NewAllocator(store)

	for i := 1; i <= 10; i++ {
		e := &models.Enquiry{}
		require.NoError(t, alloc.Create(context.Background(), e))
		assert.Equal(t, Prefix+strconv.Itoa(i), e.EnquiryNumber)
	}
}

func TestCorruptLatestNumberSurfaces(t *testing.T) {
	store := newMemStore("Enquiry_tampered")
	alloc := NewAllocator(store)

	err := alloc.Create(context.Background(), &models.Enquiry{})
	assert.ErrorIs(t, err, apperrors.ErrCorruptSequence)
}

// dupStore always reports a duplicate key, as if another writer wins every
// race.
type dupStore struct{}

func (dupStore) LatestNumber(context.Context, string) (string, error) { return "Enquiry_7", nil }
func (dupStore) Insert(context.Context, *models.Enquiry) error {
	return apperrors.ErrDuplicateKey
}

func TestRetryLoopIsBounded(t *testing.T) {
	alloc := NewAllocator(dupStore{})
	err := alloc.Create(context.Background(), &models.Enquiry{})
	assert.ErrorIs(t, err, apperrors.ErrSequenceContention)
}

// failStore returns a non-duplicate error which must surface immediately.
type failStore struct{ calls int }

func (s *failStore) LatestNumber(context.Context, string) (string, error) { return "", nil }
func (s *failStore) Insert(context.Context, *models.Enquiry) error {
	s.calls++
	return errors.New("connection reset")
}

func TestNonDuplicateInsertErrorIsNotRetried(t *testing.T) {
	store := &failStore{}
	alloc := NewAllocator(store)
	err := alloc.Create(context.Background(), &models.Enquiry{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSequenceContention)
	assert.Equal(t, 1, store.calls)
}

func TestTrailingNumber(t *testing.T) {
	n, err := trailingNumber("Enquiry_105")
	require.NoError(t, err)
	assert.Equal(t, 105, n)

	_, err = trailingNumber("Enquiry_")
	assert.Error(t, err)
}
