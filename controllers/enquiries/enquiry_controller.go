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
	"github.com/Likhith025/sensokart-sub001/services/mailer"
	"github.com/Likhith025/sensokart-sub001/services/sequence"
)

var enquiryCollection *mongo.Collection = configs.GetCollection(configs.DB, "enquiries")
var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

var enquiryAllocator = sequence.NewAllocator(sequence.NewMongoStore(configs.GetCollection(configs.DB, "enquiries")))

var enquiryMailer mailer.Mailer = mailer.NewSMTPMailer(
	configs.EnvSMTPAddr(),
	configs.EnvSMTPUser(),
	configs.EnvSMTPPassword(),
	configs.EnvSMTPFrom(),
)

// CreateEnquiry is the public quote-request endpoint. The enquiry number is
// allocated by the sequence service; the admin notification mail is
// dispatched fire-and-forget.
func CreateEnquiry(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Products []struct {
			Product  string `json:"product"`
			Quantity int    `json:"quantity"`
		} `json:"products"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if strings.TrimSpace(reqBody.Name) == "" || strings.TrimSpace(reqBody.Email) == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Name and email are required")
	}
	if len(reqBody.Products) == 0 {
		return responses.Error(c, fiber.StatusBadRequest, "At least one product is required")
	}

	items := make([]models.EnquiryItem, 0, len(reqBody.Products))
	for _, item := range reqBody.Products {
		if item.Quantity < 1 {
			return responses.Error(c, fiber.StatusBadRequest, "Product quantity must be at least 1")
		}
		productID, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
		}
		count, err := productCollection.CountDocuments(ctx, bson.M{"_id": productID})
		if err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error validating products")
		}
		if count == 0 {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		items = append(items, models.EnquiryItem{Product: productID, Quantity: item.Quantity})
	}

	now := time.Now().UTC()
	enquiry := models.Enquiry{
		Products:  items,
		Name:      strings.TrimSpace(reqBody.Name),
		Email:     strings.ToLower(strings.TrimSpace(reqBody.Email)),
		Phone:     reqBody.Phone,
		Message:   reqBody.Message,
		Status:    models.EnquiryStatusPending,
		Priority:  models.EnquiryPriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := enquiryAllocator.Create(ctx, &enquiry); err != nil {
		return responses.FromError(c, err)
	}

	mailer.Dispatch(enquiryMailer, mailer.Notification{
		Kind:          mailer.KindNewQuote,
		To:            configs.EnvAdminEmail(),
		Name:          enquiry.Name,
		EnquiryNumber: enquiry.EnquiryNumber,
	})

	return responses.Success(c, fiber.StatusCreated, "Enquiry submitted successfully", "enquiry", enquiry)
}

func GetAllEnquiries(c *fiber.Ctx) error {
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
	if status := c.Query("status"); status != "" {
		if !models.ValidEnquiryStatus(status) {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		filter["status"] = status
	}
	if priority := c.Query("priority"); priority != "" {
		if !models.ValidEnquiryPriority(priority) {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid priority filter")
		}
		filter["priority"] = priority
	}

	total, err := enquiryCollection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting enquiries")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := enquiryCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching enquiries")
	}
	enquiries := []models.Enquiry{}
	if err := cursor.All(ctx, &enquiries); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing enquiries")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"enquiries": enquiries,
		"total":     total,
		"page":      page,
		"pages":     (total + limit - 1) / limit,
	})
}

func GetEnquiry(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid enquiry ID")
	}

	var enquiry models.Enquiry
	err = enquiryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&enquiry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Enquiry not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching enquiry")
	}

	return responses.Success(c, fiber.StatusOK, "", "enquiry", enquiry)
}

func UpdateEnquiry(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid enquiry ID")
	}

	var reqBody struct {
		Status          *string `json:"status"`
		Priority        *string `json:"priority"`
		Notes           *string `json:"notes"`
		AdminNotes      *string `json:"adminNotes"`
		ResponseMessage *string `json:"responseMessage"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if reqBody.Status != nil {
		if !models.ValidEnquiryStatus(*reqBody.Status) {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid status")
		}
		update["status"] = *reqBody.Status
		if *reqBody.Status == models.EnquiryStatusResponded {
			update["respondedAt"] = time.Now().UTC()
		}
	}
	if reqBody.Priority != nil {
		if !models.ValidEnquiryPriority(*reqBody.Priority) {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid priority")
		}
		update["priority"] = *reqBody.Priority
	}
	if reqBody.Notes != nil {
		update["notes"] = *reqBody.Notes
	}
	if reqBody.AdminNotes != nil {
		update["adminNotes"] = *reqBody.AdminNotes
	}
	if reqBody.ResponseMessage != nil {
		update["responseMessage"] = *reqBody.ResponseMessage
	}

	var enquiry models.Enquiry
	err = enquiryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&enquiry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Enquiry not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating enquiry")
	}

	return responses.Success(c, fiber.StatusOK, "Enquiry updated successfully", "enquiry", enquiry)
}

func DeleteEnquiry(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid enquiry ID")
	}

	result, err := enquiryCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting enquiry")
	}
	if result.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Enquiry not found")
	}

	return responses.Message(c, fiber.StatusOK, "Enquiry deleted successfully")
}
