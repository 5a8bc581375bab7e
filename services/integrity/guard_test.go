package integrity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhith025/sensokart-sub001/apperrors"
)

// memStore is an in-memory reference graph: entity ids per kind, product
// references and subcategory ownership.
type memStore struct {
	entities    map[Kind]map[primitive.ObjectID]bool
	productRefs map[Kind]map[primitive.ObjectID][]string // target id -> product names
	subcatOwner map[primitive.ObjectID]primitive.ObjectID
}

func newMemStore() *memStore {
	return &memStore{
		entities: map[Kind]map[primitive.ObjectID]bool{
			KindBrand:       {},
			KindCategory:    {},
			KindSubCategory: {},
		},
		productRefs: map[Kind]map[primitive.ObjectID][]string{
			KindBrand:       {},
			KindCategory:    {},
			KindSubCategory: {},
		},
		subcatOwner: map[primitive.ObjectID]primitive.ObjectID{},
	}
}

func (s *memStore) add(kind Kind) primitive.ObjectID {
	id := primitive.NewObjectID()
	s.entities[kind][id] = true
	return id
}

func (s *memStore) addSubCategory(category primitive.ObjectID) primitive.ObjectID {
	id := s.add(KindSubCategory)
	s.subcatOwner[id] = category
	return id
}

func (s *memStore) refProduct(kind Kind, id primitive.ObjectID, name string) {
	s.productRefs[kind][id] = append(s.productRefs[kind][id], name)
}

func (s *memStore) Exists(_ context.Context, kind Kind, id primitive.ObjectID) (bool, error) {
	return s.entities[kind][id], nil
}

func (s *memStore) CountProductRefs(_ context.Context, kind Kind, id primitive.ObjectID) (int64, error) {
	return int64(len(s.productRefs[kind][id])), nil
}

func (s *memStore) SampleProductNames(_ context.Context, kind Kind, id primitive.ObjectID, limit int64) ([]string, error) {
	names := s.productRefs[kind][id]
	if int64(len(names)) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *memStore) DeleteSubCategoriesOf(_ context.Context, categoryID primitive.ObjectID) error {
	for id, owner := range s.subcatOwner {
		if owner == categoryID {
			delete(s.entities[KindSubCategory], id)
			delete(s.subcatOwner, id)
		}
	}
	return nil
}

func (s *memStore) Delete(_ context.Context, kind Kind, id primitive.ObjectID) error {
	delete(s.entities[kind], id)
	return nil
}

func TestDeleteMissingTarget(t *testing.T) {
	guard := NewGuard(newMemStore())
	err := guard.Delete(context.Background(), KindBrand, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteBlockedByReferencingProducts(t *testing.T) {
	store := newMemStore()
	brand := store.add(KindBrand)
	store.refProduct(KindBrand, brand, "Pump A")
	store.refProduct(KindBrand, brand, "Pump B")
	store.refProduct(KindBrand, brand, "Pump C")
	store.refProduct(KindBrand, brand, "Pump D")

	guard := NewGuard(store)
	err := guard.Delete(context.Background(), KindBrand, brand)

	var conflict *apperrors.ReferencedConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, int64(4), conflict.Count)
	assert.Len(t, conflict.Samples, 3, "samples are capped at 3")

	// target must be untouched
	assert.True(t, store.entities[KindBrand][brand])
}

func TestDeleteUnreferencedBrand(t *testing.T) {
	store := newMemStore()
	brand := store.add(KindBrand)

	guard := NewGuard(store)
	require.NoError(t, guard.Delete(context.Background(), KindBrand, brand))
	assert.False(t, store.entities[KindBrand][brand])
}

func TestCategoryDeleteCascadesOwnSubCategories(t *testing.T) {
	store := newMemStore()
	pumps := store.add(KindCategory)
	valves := store.add(KindCategory)
	centrifugal := store.addSubCategory(pumps)
	ball := store.addSubCategory(valves)

	guard := NewGuard(store)
	require.NoError(t, guard.Delete(context.Background(), KindCategory, pumps))

	assert.False(t, store.entities[KindCategory][pumps])
	assert.False(t, store.entities[KindSubCategory][centrifugal], "own subcategory removed")
	assert.True(t, store.entities[KindSubCategory][ball], "other category's subcategory untouched")
}

func TestCategoryDeleteBlockedBeforeCascade(t *testing.T) {
	store := newMemStore()
	pumps := store.add(KindCategory)
	centrifugal := store.addSubCategory(pumps)
	store.refProduct(KindCategory, pumps, "Slurry Pump")

	guard := NewGuard(store)
	err := guard.Delete(context.Background(), KindCategory, pumps)

	var conflict *apperrors.ReferencedConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, int64(1), conflict.Count)
	assert.True(t, store.entities[KindSubCategory][centrifugal], "cascade must not run when blocked")
}

// End to end: create category -> subcategory -> product referencing both,
// delete blocked, drop the product, delete succeeds and cascades.
func TestGuardedDeleteLifecycle(t *testing.T) {
	store := newMemStore()
	pumps := store.add(KindCategory)
	centrifugal := store.addSubCategory(pumps)
	store.refProduct(KindCategory, pumps, "CP-100")

	guard := NewGuard(store)

	err := guard.Delete(context.Background(), KindCategory, pumps)
	var conflict *apperrors.ReferencedConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, int64(1), conflict.Count)

	// delete the product, retry
	store.productRefs[KindCategory][pumps] = nil
	require.NoError(t, guard.Delete(context.Background(), KindCategory, pumps))
	assert.False(t, store.entities[KindCategory][pumps])
	assert.False(t, store.entities[KindSubCategory][centrifugal])
}
