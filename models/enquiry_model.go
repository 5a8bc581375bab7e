package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EnquiryStatusPending   = "pending"
	EnquiryStatusResponded = "responded"
	EnquiryStatusCompleted = "completed"
	EnquiryStatusCancelled = "cancelled"
)

const (
	EnquiryPriorityLow    = "low"
	EnquiryPriorityMedium = "medium"
	EnquiryPriorityHigh   = "high"
)

// EnquiryItem is a single requested product line in a quote request.
type EnquiryItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product" validate:"required"`
	Quantity int                `bson:"quantity" json:"quantity" validate:"min=1"`
}

type Enquiry struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EnquiryNumber   string             `bson:"enquiryNumber" json:"enquiryNumber"`
	Products        []EnquiryItem      `bson:"products" json:"products" validate:"required,min=1"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Email           string             `bson:"email" json:"email" validate:"required,email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message         string             `bson:"message,omitempty" json:"message,omitempty"`
	Status          string             `bson:"status" json:"status"`
	Priority        string             `bson:"priority" json:"priority"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	AdminNotes      string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	ResponseMessage string             `bson:"responseMessage,omitempty" json:"responseMessage,omitempty"`
	RespondedAt     *time.Time         `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func ValidEnquiryStatus(s string) bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusResponded, EnquiryStatusCompleted, EnquiryStatusCancelled:
		return true
	}
	return false
}

func ValidEnquiryPriority(p string) bool {
	switch p {
	case EnquiryPriorityLow, EnquiryPriorityMedium, EnquiryPriorityHigh:
		return true
	}
	return false
}
