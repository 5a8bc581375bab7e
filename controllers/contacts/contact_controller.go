package controllers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Likhith025/sensokart-sub001/configs"
	"github.com/Likhith025/sensokart-sub001/models"
	"github.com/Likhith025/sensokart-sub001/responses"
)

var contactCollection *mongo.Collection = configs.GetCollection(configs.DB, "contacts")

// CreateContact is the public contact-form endpoint.
func CreateContact(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(reqBody.Name) == "" || strings.TrimSpace(reqBody.Email) == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Name and email are required")
	}
	if strings.TrimSpace(reqBody.Message) == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Message is required")
	}

	now := time.Now().UTC()
	contact := models.Contact{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(reqBody.Name),
		Email:     strings.ToLower(strings.TrimSpace(reqBody.Email)),
		Phone:     reqBody.Phone,
		Subject:   reqBody.Subject,
		Message:   reqBody.Message,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := contactCollection.InsertOne(ctx, contact); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error saving message")
	}

	return responses.Success(c, fiber.StatusCreated, "Message sent successfully", "contact", contact)
}

func GetAllContacts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if limit < 1 {
		limit = 20
	}

	filter := bson.M{}
	if v := c.Query("isRead"); v != "" {
		filter["isRead"] = v == "true"
	}

	total, err := contactCollection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting messages")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := contactCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching messages")
	}
	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing messages")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"contacts": contacts,
		"total":    total,
		"page":     page,
		"pages":    (total + limit - 1) / limit,
	})
}

// MarkContactRead flips the isRead flag.
func MarkContactRead(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid contact ID")
	}

	var contact models.Contact
	err = contactCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Contact message not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating message")
	}

	return responses.Success(c, fiber.StatusOK, "Message marked as read", "contact", contact)
}

func DeleteContact(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid contact ID")
	}

	result, err := contactCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting message")
	}
	if result.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Contact message not found")
	}

	return responses.Message(c, fiber.StatusOK, "Message deleted successfully")
}
