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

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/configs"
	"github.com/Likhith025/sensokart-sub001/models"
	"github.com/Likhith025/sensokart-sub001/responses"
	"github.com/Likhith025/sensokart-sub001/services/integrity"
)

var subCategoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "subcategories")
var categoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "categories")

var subCategoryGuard = integrity.NewGuard(integrity.NewMongoStore(
	configs.GetCollection(configs.DB, "brands"),
	configs.GetCollection(configs.DB, "categories"),
	configs.GetCollection(configs.DB, "subcategories"),
	configs.GetCollection(configs.DB, "products"),
))

func GetAllSubCategories(c *fiber.Ctx) error {
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
	if category := c.Query("category"); category != "" {
		categoryID, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
		}
		filter["category"] = categoryID
	}

	total, err := subCategoryCollection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting subcategories")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := subCategoryCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching subcategories")
	}
	subCategories := []models.SubCategory{}
	if err := cursor.All(ctx, &subCategories); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing subcategories")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subCategories": subCategories,
		"total":         total,
		"page":          page,
		"pages":         (total + limit - 1) / limit,
	})
}

func GetSubCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid subcategory ID")
	}

	var subCategory models.SubCategory
	err = subCategoryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&subCategory)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Subcategory not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching subcategory")
	}

	return responses.Success(c, fiber.StatusOK, "", "subCategory", subCategory)
}

func CreateSubCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name             string `json:"name"`
		Category         string `json:"category"`
		DescriptionTitle string `json:"descriptionTitle"`
		Description      string `json:"description"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	name := strings.TrimSpace(reqBody.Name)
	if name == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Subcategory name is required")
	}
	categoryID, err := primitive.ObjectIDFromHex(reqBody.Category)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	// owning category must exist
	count, err := categoryCollection.CountDocuments(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error checking category")
	}
	if count == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}

	now := time.Now().UTC()
	subCategory := models.SubCategory{
		ID:               primitive.NewObjectID(),
		Name:             name,
		DashedName:       models.Slugify(name),
		Category:         categoryID,
		DescriptionTitle: reqBody.DescriptionTitle,
		Description:      reqBody.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := subCategoryCollection.InsertOne(ctx, subCategory); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Subcategory with this name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error creating subcategory")
	}

	return responses.Success(c, fiber.StatusCreated, "Subcategory created successfully", "subCategory", subCategory)
}

func UpdateSubCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid subcategory ID")
	}

	var reqBody struct {
		Name             *string `json:"name"`
		Category         *string `json:"category"`
		DescriptionTitle *string `json:"descriptionTitle"`
		Description      *string `json:"description"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if reqBody.Name != nil {
		name := strings.TrimSpace(*reqBody.Name)
		if name == "" {
			return responses.Error(c, fiber.StatusBadRequest, "Subcategory name cannot be empty")
		}
		// dashedName follows the name
		update["name"] = name
		update["dashedName"] = models.Slugify(name)
	}
	if reqBody.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*reqBody.Category)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
		}
		count, err := categoryCollection.CountDocuments(ctx, bson.M{"_id": categoryID})
		if err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error checking category")
		}
		if count == 0 {
			return responses.Error(c, fiber.StatusNotFound, "Category not found")
		}
		update["category"] = categoryID
	}
	if reqBody.DescriptionTitle != nil {
		update["descriptionTitle"] = *reqBody.DescriptionTitle
	}
	if reqBody.Description != nil {
		update["description"] = *reqBody.Description
	}

	var subCategory models.SubCategory
	err = subCategoryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&subCategory)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Subcategory not found")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Subcategory with this name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating subcategory")
	}

	return responses.Success(c, fiber.StatusOK, "Subcategory updated successfully", "subCategory", subCategory)
}

func DeleteSubCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid subcategory ID")
	}

	if err := subCategoryGuard.Delete(ctx, integrity.KindSubCategory, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return responses.Error(c, fiber.StatusNotFound, "Subcategory not found")
		}
		return responses.FromError(c, err)
	}

	return responses.Message(c, fiber.StatusOK, "Subcategory deleted successfully")
}
