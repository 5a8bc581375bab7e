package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

type memFinder struct {
	brands        map[string]*models.Brand
	categories    map[string]*models.Category
	subcategories map[string]*models.SubCategory
	products      map[string]*models.Product
	productErr    error
}

func newMemFinder() *memFinder {
	return &memFinder{
		brands:        map[string]*models.Brand{},
		categories:    map[string]*models.Category{},
		subcategories: map[string]*models.SubCategory{},
		products:      map[string]*models.Product{},
	}
}

func (f *memFinder) BrandBySlug(_ context.Context, slug string) (*models.Brand, error) {
	if b, ok := f.brands[slug]; ok {
		return b, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *memFinder) CategoryBySlug(_ context.Context, slug string) (*models.Category, error) {
	if c, ok := f.categories[slug]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *memFinder) SubCategoryBySlug(_ context.Context, slug string) (*models.SubCategory, error) {
	if s, ok := f.subcategories[slug]; ok {
		return s, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *memFinder) ProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	if f.productErr != nil {
		return nil, f.productErr
	}
	if p, ok := f.products[slug]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func TestResolveSingleKind(t *testing.T) {
	finder := newMemFinder()
	finder.subcategories["centrifugal"] = &models.SubCategory{Name: "Centrifugal", DashedName: "centrifugal"}

	match, err := NewResolver(finder).Resolve(context.Background(), "centrifugal")
	require.NoError(t, err)
	assert.Equal(t, KindSubCategory, match.Kind)
	require.NotNil(t, match.SubCategory)
	assert.Equal(t, "Centrifugal", match.SubCategory.Name)
	assert.Nil(t, match.Brand)
}

func TestResolvePrecedenceBrandOverProduct(t *testing.T) {
	finder := newMemFinder()
	finder.brands["x"] = &models.Brand{Name: "X Brand", Slug: "x"}
	finder.products["x"] = &models.Product{Name: "X Product", Slug: "x"}

	match, err := NewResolver(finder).Resolve(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, KindBrand, match.Kind)
	assert.Nil(t, match.Product, "lower-precedence hit is dropped, not an error")
}

func TestResolvePrecedenceCategoryOverSubCategory(t *testing.T) {
	finder := newMemFinder()
	finder.categories["pumps"] = &models.Category{Name: "Pumps", Slug: "pumps"}
	finder.subcategories["pumps"] = &models.SubCategory{Name: "Pumps Sub", DashedName: "pumps"}

	match, err := NewResolver(finder).Resolve(context.Background(), "pumps")
	require.NoError(t, err)
	assert.Equal(t, KindCategory, match.Kind)
}

func TestResolveNoHit(t *testing.T) {
	_, err := NewResolver(newMemFinder()).Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResolveStoreErrorSurfaces(t *testing.T) {
	finder := newMemFinder()
	finder.productErr = errors.New("connection reset")

	_, err := NewResolver(finder).Resolve(context.Background(), "anything")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
