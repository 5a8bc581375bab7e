package priorityref

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

type memReferents struct {
	brands        map[primitive.ObjectID]*models.Brand
	categories    map[primitive.ObjectID]*models.Category
	subcategories map[primitive.ObjectID]*models.SubCategory
}

func newMemReferents() *memReferents {
	return &memReferents{
		brands:        map[primitive.ObjectID]*models.Brand{},
		categories:    map[primitive.ObjectID]*models.Category{},
		subcategories: map[primitive.ObjectID]*models.SubCategory{},
	}
}

func (m *memReferents) FindBrand(_ context.Context, id primitive.ObjectID) (*models.Brand, error) {
	if b, ok := m.brands[id]; ok {
		return b, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memReferents) FindCategory(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memReferents) FindSubCategory(_ context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	if s, ok := m.subcategories[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrNotFound
}

type memStore struct {
	records map[primitive.ObjectID]*models.Priority
}

func newMemStore() *memStore {
	return &memStore{records: map[primitive.ObjectID]*models.Priority{}}
}

func (m *memStore) Find(_ context.Context, id primitive.ObjectID) (*models.Priority, error) {
	if p, ok := m.records[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) ExistsPair(_ context.Context, kind Kind, objectID primitive.ObjectID, exclude *primitive.ObjectID) (bool, error) {
	for id, p := range m.records {
		if exclude != nil && id == *exclude {
			continue
		}
		if p.Type == string(kind) && p.ObjectID == objectID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) Insert(_ context.Context, p *models.Priority) error {
	p.ID = primitive.NewObjectID()
	clone := *p
	m.records[p.ID] = &clone
	return nil
}

func (m *memStore) Update(_ context.Context, p *models.Priority) error {
	clone := *p
	m.records[p.ID] = &clone
	return nil
}

func (m *memStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(m.records, id)
	return nil
}

func fixture(t *testing.T) (*Resolver, *memReferents, *memStore, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	refs := newMemReferents()
	store := newMemStore()

	brandID := primitive.NewObjectID()
	refs.brands[brandID] = &models.Brand{ID: brandID, Name: "Acme", Slug: "acme"}
	categoryID := primitive.NewObjectID()
	refs.categories[categoryID] = &models.Category{ID: categoryID, Name: "Pumps", Slug: "pumps"}

	return NewResolver(refs, store), refs, store, brandID, categoryID
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"Brand", "Category", "Subcategory"} {
		kind, err := ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, Kind(valid), kind)
	}

	_, err := ParseKind("Product")
	assert.ErrorIs(t, err, apperrors.ErrInvalidType)
	_, err = ParseKind("brand")
	assert.ErrorIs(t, err, apperrors.ErrInvalidType, "tags are case sensitive")
}

func TestCreateResolvesReferent(t *testing.T) {
	resolver, _, _, brandID, _ := fixture(t)

	p, referent, err := resolver.Create(context.Background(), "Homepage brands", Ref{Kind: KindBrand, ID: brandID}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Brand", p.Type)
	assert.Equal(t, brandID, p.ObjectID)
	assert.Equal(t, "Acme", referent.Name)
	assert.Equal(t, KindBrand, referent.Kind)
}

func TestCreateUnknownReferent(t *testing.T) {
	resolver, _, _, _, _ := fixture(t)

	_, _, err := resolver.Create(context.Background(), "x", Ref{Kind: KindBrand, ID: primitive.NewObjectID()}, 0)
	assert.ErrorIs(t, err, apperrors.ErrReferentNotFound)
}

func TestCreateDuplicatePairRejected(t *testing.T) {
	resolver, _, _, brandID, _ := fixture(t)

	_, _, err := resolver.Create(context.Background(), "first", Ref{Kind: KindBrand, ID: brandID}, 1)
	require.NoError(t, err)

	_, _, err = resolver.Create(context.Background(), "second", Ref{Kind: KindBrand, ID: brandID}, 2)
	assert.ErrorIs(t, err, apperrors.ErrDuplicatePriority)
}

func TestSameObjectIDDifferentKindAllowed(t *testing.T) {
	resolver, refs, _, brandID, _ := fixture(t)

	// a category that happens to share the brand's object id
	refs.categories[brandID] = &models.Category{ID: brandID, Name: "Shadow", Slug: "shadow"}

	_, _, err := resolver.Create(context.Background(), "as brand", Ref{Kind: KindBrand, ID: brandID}, 1)
	require.NoError(t, err)
	_, _, err = resolver.Create(context.Background(), "as category", Ref{Kind: KindCategory, ID: brandID}, 2)
	assert.NoError(t, err, "different kinds reference different collections")
}

func TestUpdateReRunsChecksAgainstNewPair(t *testing.T) {
	resolver, _, _, brandID, categoryID := fixture(t)

	p, _, err := resolver.Create(context.Background(), "brand rank", Ref{Kind: KindBrand, ID: brandID}, 1)
	require.NoError(t, err)
	other, _, err := resolver.Create(context.Background(), "category rank", Ref{Kind: KindCategory, ID: categoryID}, 2)
	require.NoError(t, err)

	// moving p onto other's pair must fail
	typ := "Category"
	_, _, err = resolver.Update(context.Background(), p.ID, Patch{Type: &typ, ObjectID: &categoryID})
	assert.ErrorIs(t, err, apperrors.ErrDuplicatePriority)

	// updating other in place (rank only) excludes itself from the check
	rank := 5
	updated, referent, err := resolver.Update(context.Background(), other.ID, Patch{Priority: &rank})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Priority)
	assert.Equal(t, "Pumps", referent.Name)
}

func TestUpdateToMissingReferent(t *testing.T) {
	resolver, _, _, brandID, _ := fixture(t)

	p, _, err := resolver.Create(context.Background(), "brand rank", Ref{Kind: KindBrand, ID: brandID}, 1)
	require.NoError(t, err)

	missing := primitive.NewObjectID()
	_, _, err = resolver.Update(context.Background(), p.ID, Patch{ObjectID: &missing})
	assert.ErrorIs(t, err, apperrors.ErrReferentNotFound)
}

func TestResolveInvalidKind(t *testing.T) {
	resolver, _, _, _, _ := fixture(t)
	_, err := resolver.Resolve(context.Background(), Ref{Kind: "Product", ID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, apperrors.ErrInvalidType)
}
