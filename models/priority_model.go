package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Priority ranks a brand, category or subcategory for storefront ordering.
// Type decides which collection ObjectId points into; only one record may
// exist per (type, objectId) pair.
type Priority struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Type      string             `bson:"type" json:"type" validate:"required,oneof=Category Subcategory Brand"`
	ObjectID  primitive.ObjectID `bson:"objectId" json:"objectId" validate:"required"`
	Priority  int                `bson:"priority" json:"priority" validate:"min=0"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
