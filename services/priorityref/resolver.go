// Package priorityref resolves a priority's polymorphic reference. The type
// field is a closed tag over three concrete kinds, each with its own lookup;
// a priority never holds a string-keyed collection name.
package priorityref

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

type Kind string

const (
	KindBrand       Kind = "Brand"
	KindCategory    Kind = "Category"
	KindSubcategory Kind = "Subcategory"
)

// ParseKind validates the wire value of a priority type.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBrand, KindCategory, KindSubcategory:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidType, s)
}

// Ref is a tagged reference into one of the three target collections.
type Ref struct {
	Kind Kind
	ID   primitive.ObjectID
}

// Referent is the populated view of a resolved reference.
type Referent struct {
	Kind Kind               `json:"kind"`
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
	Slug string             `json:"slug"`
}

// Referents looks records up in the three referenceable collections. Each
// finder returns apperrors.ErrNotFound when the id does not resolve.
type Referents interface {
	FindBrand(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	FindCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindSubCategory(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error)
}

// Store is the priorities collection surface the resolver needs.
type Store interface {
	Find(ctx context.Context, id primitive.ObjectID) (*models.Priority, error)

	// ExistsPair reports whether a priority already exists for the
	// (kind, objectId) pair, ignoring exclude when non-nil.
	ExistsPair(ctx context.Context, kind Kind, objectID primitive.ObjectID, exclude *primitive.ObjectID) (bool, error)

	Insert(ctx context.Context, p *models.Priority) error
	Update(ctx context.Context, p *models.Priority) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Resolver struct {
	refs  Referents
	store Store
}

func NewResolver(refs Referents, store Store) *Resolver {
	return &Resolver{refs: refs, store: store}
}

// Resolve matches on the tag and looks the referent up in the collection it
// selects.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) (*Referent, error) {
	switch ref.Kind {
	case KindBrand:
		b, err := r.refs.FindBrand(ctx, ref.ID)
		if err != nil {
			return nil, referentErr(ref, err)
		}
		return &Referent{Kind: KindBrand, ID: b.ID, Name: b.Name, Slug: b.Slug}, nil
	case KindCategory:
		cat, err := r.refs.FindCategory(ctx, ref.ID)
		if err != nil {
			return nil, referentErr(ref, err)
		}
		return &Referent{Kind: KindCategory, ID: cat.ID, Name: cat.Name, Slug: cat.Slug}, nil
	case KindSubcategory:
		sub, err := r.refs.FindSubCategory(ctx, ref.ID)
		if err != nil {
			return nil, referentErr(ref, err)
		}
		return &Referent{Kind: KindSubcategory, ID: sub.ID, Name: sub.Name, Slug: sub.DashedName}, nil
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidType, ref.Kind)
}

func referentErr(ref Ref, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s %s", apperrors.ErrReferentNotFound, ref.Kind, ref.ID.Hex())
}

// Create persists a new priority after resolving its referent and checking
// the (type, objectId) pair is free. Returns the record with its referent
// populated.
func (r *Resolver) Create(ctx context.Context, name string, ref Ref, rank int) (*models.Priority, *Referent, error) {
	if rank < 0 {
		return nil, nil, apperrors.Validation("priority must be >= 0")
	}

	referent, err := r.Resolve(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	taken, err := r.store.ExistsPair(ctx, ref.Kind, ref.ID, nil)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, fmt.Errorf("%w: %s %s", apperrors.ErrDuplicatePriority, ref.Kind, ref.ID.Hex())
	}

	now := time.Now().UTC()
	p := &models.Priority{
		Name:      name,
		Type:      string(ref.Kind),
		ObjectID:  ref.ID,
		Priority:  rank,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.store.Insert(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, referent, nil
}

// Patch carries the optional fields of a priority update.
type Patch struct {
	Name     *string
	Type     *string
	ObjectID *primitive.ObjectID
	Priority *int
}

// Update applies the patch. When the type and/or objectId change, the
// existence and duplicate checks rerun against the new pair, excluding the
// record itself.
func (r *Resolver) Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*models.Priority, *Referent, error) {
	p, err := r.store.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	ref := Ref{Kind: Kind(p.Type), ID: p.ObjectID}
	refChanged := false
	if patch.Type != nil {
		kind, err := ParseKind(*patch.Type)
		if err != nil {
			return nil, nil, err
		}
		if kind != ref.Kind {
			ref.Kind = kind
			refChanged = true
		}
	}
	if patch.ObjectID != nil && *patch.ObjectID != ref.ID {
		ref.ID = *patch.ObjectID
		refChanged = true
	}

	referent, err := r.Resolve(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	if refChanged {
		taken, err := r.store.ExistsPair(ctx, ref.Kind, ref.ID, &p.ID)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			return nil, nil, fmt.Errorf("%w: %s %s", apperrors.ErrDuplicatePriority, ref.Kind, ref.ID.Hex())
		}
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Priority != nil {
		if *patch.Priority < 0 {
			return nil, nil, apperrors.Validation("priority must be >= 0")
		}
		p.Priority = *patch.Priority
	}
	p.Type = string(ref.Kind)
	p.ObjectID = ref.ID
	p.UpdatedAt = time.Now().UTC()

	if err := r.store.Update(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, referent, nil
}

// Delete removes a priority record.
func (r *Resolver) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.store.Find(ctx, id); err != nil {
		return err
	}
	return r.store.Delete(ctx, id)
}
