package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCategory always belongs to a Category. DashedName is re-derived from
// Name whenever the name changes.
type SubCategory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name" validate:"required"`
	DashedName       string             `bson:"dashedName" json:"dashedName"`
	Category         primitive.ObjectID `bson:"category" json:"category" validate:"required"`
	DescriptionTitle string             `bson:"descriptionTitle,omitempty" json:"descriptionTitle,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
