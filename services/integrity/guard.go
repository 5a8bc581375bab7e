// Package integrity guards destructive operations on brands, categories and
// subcategories: a delete is blocked while any product still references the
// target, and deleting a category cascades to its subcategories.
package integrity

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhith025/sensokart-sub001/apperrors"
)

type Kind string

const (
	KindBrand       Kind = "Brand"
	KindCategory    Kind = "Category"
	KindSubCategory Kind = "SubCategory"
)

// sampleLimit bounds how many referencing product names a conflict reports.
const sampleLimit = 3

// Store is the slice of the reference graph the guard needs.
type Store interface {
	Exists(ctx context.Context, kind Kind, id primitive.ObjectID) (bool, error)

	// CountProductRefs counts products whose reference field for kind
	// (brand, category or subCategory) equals id.
	CountProductRefs(ctx context.Context, kind Kind, id primitive.ObjectID) (int64, error)

	// SampleProductNames returns up to limit names of referencing products.
	SampleProductNames(ctx context.Context, kind Kind, id primitive.ObjectID, limit int64) ([]string, error)

	// DeleteSubCategoriesOf removes every subcategory owned by categoryID.
	DeleteSubCategoriesOf(ctx context.Context, categoryID primitive.ObjectID) error

	Delete(ctx context.Context, kind Kind, id primitive.ObjectID) error
}

type Guard struct {
	store Store
}

func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// Delete removes the record of the given kind after the reverse-reference
// check passes. The check and the delete commit independently; a product
// created in between leaves a brief dangling reference, which is accepted.
func (g *Guard) Delete(ctx context.Context, kind Kind, id primitive.ObjectID) error {
	exists, err := g.store.Exists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id.Hex())
	}

	count, err := g.store.CountProductRefs(ctx, kind, id)
	if err != nil {
		return err
	}
	if count > 0 {
		samples, err := g.store.SampleProductNames(ctx, kind, id, sampleLimit)
		if err != nil {
			return err
		}
		return &apperrors.ReferencedConflictError{Count: count, Samples: samples}
	}

	if kind == KindCategory {
		if err := g.store.DeleteSubCategoriesOf(ctx, id); err != nil {
			return err
		}
	}
	return g.store.Delete(ctx, kind, id)
}
