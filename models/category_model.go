package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name" validate:"required"`
	Slug             string             `bson:"slug" json:"slug"`
	DescriptionTitle string             `bson:"descriptionTitle,omitempty" json:"descriptionTitle,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
