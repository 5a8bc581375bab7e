package lookup

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

// MongoFinder runs the per-kind slug queries against the live collections.
// SubCategories store their slug as dashedName; the other kinds as slug.
type MongoFinder struct {
	brands        *mongo.Collection
	categories    *mongo.Collection
	subcategories *mongo.Collection
	products      *mongo.Collection
}

func NewMongoFinder(brands, categories, subcategories, products *mongo.Collection) *MongoFinder {
	return &MongoFinder{
		brands:        brands,
		categories:    categories,
		subcategories: subcategories,
		products:      products,
	}
}

func (f *MongoFinder) BrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var b models.Brand
	if err := mapNoDocuments(f.brands.FindOne(ctx, bson.M{"slug": slug}).Decode(&b)); err != nil {
		return nil, err
	}
	return &b, nil
}

func (f *MongoFinder) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	if err := mapNoDocuments(f.categories.FindOne(ctx, bson.M{"slug": slug}).Decode(&c)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (f *MongoFinder) SubCategoryBySlug(ctx context.Context, slug string) (*models.SubCategory, error) {
	var s models.SubCategory
	if err := mapNoDocuments(f.subcategories.FindOne(ctx, bson.M{"dashedName": slug}).Decode(&s)); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *MongoFinder) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	if err := mapNoDocuments(f.products.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)); err != nil {
		return nil, err
	}
	return &p, nil
}

func mapNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	return err
}
