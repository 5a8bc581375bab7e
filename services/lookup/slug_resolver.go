// Package lookup resolves a slug against all four sluggable collections at
// once. The four queries run concurrently; when several kinds share a slug
// the winner is decided by a fixed precedence, not an error.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

const (
	KindBrand       = "brand"
	KindCategory    = "category"
	KindSubCategory = "subcategory"
	KindProduct     = "product"
)

// Finder runs a single-kind slug query. Each method returns
// apperrors.ErrNotFound when no record matches.
type Finder interface {
	BrandBySlug(ctx context.Context, slug string) (*models.Brand, error)
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	SubCategoryBySlug(ctx context.Context, slug string) (*models.SubCategory, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

// Match is a slug hit tagged with its originating kind; exactly one entity
// pointer is set.
type Match struct {
	Kind        string              `json:"kind"`
	Brand       *models.Brand       `json:"brand,omitempty"`
	Category    *models.Category    `json:"category,omitempty"`
	SubCategory *models.SubCategory `json:"subCategory,omitempty"`
	Product     *models.Product     `json:"product,omitempty"`
}

type Resolver struct {
	finder Finder
}

func NewResolver(finder Finder) *Resolver {
	return &Resolver{finder: finder}
}

// Resolve fans out to all four collections concurrently and returns the
// first hit in precedence order Brand > Category > SubCategory > Product.
func (r *Resolver) Resolve(ctx context.Context, slug string) (*Match, error) {
	var (
		wg      sync.WaitGroup
		brand   *models.Brand
		cat     *models.Category
		sub     *models.SubCategory
		product *models.Product
		errs    [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		brand, errs[0] = r.finder.BrandBySlug(ctx, slug)
	}()
	go func() {
		defer wg.Done()
		cat, errs[1] = r.finder.CategoryBySlug(ctx, slug)
	}()
	go func() {
		defer wg.Done()
		sub, errs[2] = r.finder.SubCategoryBySlug(ctx, slug)
	}()
	go func() {
		defer wg.Done()
		product, errs[3] = r.finder.ProductBySlug(ctx, slug)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil && !isNotFound(err) {
			return nil, err
		}
	}

	switch {
	case brand != nil && errs[0] == nil:
		return &Match{Kind: KindBrand, Brand: brand}, nil
	case cat != nil && errs[1] == nil:
		return &Match{Kind: KindCategory, Category: cat}, nil
	case sub != nil && errs[2] == nil:
		return &Match{Kind: KindSubCategory, SubCategory: sub}, nil
	case product != nil && errs[3] == nil:
		return &Match{Kind: KindProduct, Product: product}, nil
	}
	return nil, fmt.Errorf("%w: slug %q", apperrors.ErrNotFound, slug)
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
