package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Ratings struct {
	Average float64 `bson:"average" json:"average" validate:"min=0,max=5"`
	Count   int     `bson:"count" json:"count" validate:"min=0"`
}

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Slug           string             `bson:"slug" json:"slug"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Price          float64            `bson:"price" json:"price" validate:"min=0"`
	SalePrice      *float64           `bson:"salePrice,omitempty" json:"salePrice,omitempty"`
	Brand          primitive.ObjectID `bson:"brand" json:"brand" validate:"required"`
	Category       primitive.ObjectID `bson:"category" json:"category" validate:"required"`
	SubCategory    primitive.ObjectID `bson:"subCategory" json:"subCategory" validate:"required"`
	Quantity       int                `bson:"quantity" json:"quantity" validate:"min=0"`
	CoverPhoto     string             `bson:"coverPhoto,omitempty" json:"coverPhoto,omitempty"`
	Images         []string           `bson:"images" json:"images"`
	Features       []string           `bson:"features" json:"features"`
	Specifications map[string]string  `bson:"specifications" json:"specifications"`
	Ratings        Ratings            `bson:"ratings" json:"ratings"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	IsFeatured     bool               `bson:"isFeatured" json:"isFeatured"`
	SKU            string             `bson:"sku" json:"sku" validate:"required"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
