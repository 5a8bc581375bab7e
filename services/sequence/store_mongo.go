package sequence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

// MongoStore backs the allocator with the enquiries collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) LatestNumber(ctx context.Context, prefix string) (string, error) {
	filter := bson.M{"enquiryNumber": bson.M{"$regex": "^" + prefix}}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var latest models.Enquiry
	err := s.coll.FindOne(ctx, filter, opts).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading latest enquiry number: %w", err)
	}
	return latest.EnquiryNumber, nil
}

func (s *MongoStore) Insert(ctx context.Context, e *models.Enquiry) error {
	res, err := s.coll.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: enquiryNumber %s", apperrors.ErrDuplicateKey, e.EnquiryNumber)
	}
	if err != nil {
		return fmt.Errorf("inserting enquiry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}
