package integrity

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore resolves guard queries against the live collections.
type MongoStore struct {
	brands        *mongo.Collection
	categories    *mongo.Collection
	subcategories *mongo.Collection
	products      *mongo.Collection
}

func NewMongoStore(brands, categories, subcategories, products *mongo.Collection) *MongoStore {
	return &MongoStore{
		brands:        brands,
		categories:    categories,
		subcategories: subcategories,
		products:      products,
	}
}

func (s *MongoStore) collection(kind Kind) (*mongo.Collection, error) {
	switch kind {
	case KindBrand:
		return s.brands, nil
	case KindCategory:
		return s.categories, nil
	case KindSubCategory:
		return s.subcategories, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

// refField is the product field that points at the given kind.
func refField(kind Kind) string {
	switch kind {
	case KindBrand:
		return "brand"
	case KindCategory:
		return "category"
	default:
		return "subCategory"
	}
}

func (s *MongoStore) Exists(ctx context.Context, kind Kind, id primitive.ObjectID) (bool, error) {
	coll, err := s.collection(kind)
	if err != nil {
		return false, err
	}
	count, err := coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *MongoStore) CountProductRefs(ctx context.Context, kind Kind, id primitive.ObjectID) (int64, error) {
	return s.products.CountDocuments(ctx, bson.M{refField(kind): id})
}

func (s *MongoStore) SampleProductNames(ctx context.Context, kind Kind, id primitive.ObjectID, limit int64) ([]string, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"name": 1})

	cursor, err := s.products.Find(ctx, bson.M{refField(kind): id}, opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

func (s *MongoStore) DeleteSubCategoriesOf(ctx context.Context, categoryID primitive.ObjectID) error {
	_, err := s.subcategories.DeleteMany(ctx, bson.M{"category": categoryID})
	return err
}

func (s *MongoStore) Delete(ctx context.Context, kind Kind, id primitive.ObjectID) error {
	coll, err := s.collection(kind)
	if err != nil {
		return err
	}
	_, err = coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
