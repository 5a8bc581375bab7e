package priorityref

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

// MongoReferents resolves referents against the live collections.
type MongoReferents struct {
	brands        *mongo.Collection
	categories    *mongo.Collection
	subcategories *mongo.Collection
}

func NewMongoReferents(brands, categories, subcategories *mongo.Collection) *MongoReferents {
	return &MongoReferents{brands: brands, categories: categories, subcategories: subcategories}
}

func (r *MongoReferents) FindBrand(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var b models.Brand
	if err := decodeOne(r.brands.FindOne(ctx, bson.M{"_id": id}), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MongoReferents) FindCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var cat models.Category
	if err := decodeOne(r.categories.FindOne(ctx, bson.M{"_id": id}), &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MongoReferents) FindSubCategory(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := decodeOne(r.subcategories.FindOne(ctx, bson.M{"_id": id}), &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func decodeOne(res *mongo.SingleResult, out interface{}) error {
	err := res.Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	return err
}

// MongoStore backs the resolver with the priorities collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Find(ctx context.Context, id primitive.ObjectID) (*models.Priority, error) {
	var p models.Priority
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: priority %s", apperrors.ErrNotFound, id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) ExistsPair(ctx context.Context, kind Kind, objectID primitive.ObjectID, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"type": string(kind), "objectId": objectID}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *MongoStore) Insert(ctx context.Context, p *models.Priority) error {
	res, err := s.coll.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		// compound unique index on (type, objectId) caught a race the
		// pre-check missed
		return fmt.Errorf("%w: %s %s", apperrors.ErrDuplicatePriority, p.Type, p.ObjectID.Hex())
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, p *models.Priority) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s %s", apperrors.ErrDuplicatePriority, p.Type, p.ObjectID.Hex())
	}
	return err
}

func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
