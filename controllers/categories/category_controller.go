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

var categoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "categories")

var categoryGuard = integrity.NewGuard(integrity.NewMongoStore(
	configs.GetCollection(configs.DB, "brands"),
	configs.GetCollection(configs.DB, "categories"),
	configs.GetCollection(configs.DB, "subcategories"),
	configs.GetCollection(configs.DB, "products"),
))

func GetAllCategories(c *fiber.Ctx) error {
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
	if q := c.Query("q"); q != "" {
		filter["name"] = bson.M{"$regex": q, "$options": "i"}
	}

	total, err := categoryCollection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting categories")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := categoryCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching categories")
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing categories")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"categories": categories,
		"total":      total,
		"page":       page,
		"pages":      (total + limit - 1) / limit,
	})
}

func GetCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var category models.Category
	err = categoryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching category")
	}

	return responses.Success(c, fiber.StatusOK, "", "category", category)
}

func GetCategoryBySlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var category models.Category
	err := categoryCollection.FindOne(ctx, bson.M{"slug": c.Params("slug")}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching category")
	}

	return responses.Success(c, fiber.StatusOK, "", "category", category)
}

func CreateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name             string `json:"name"`
		DescriptionTitle string `json:"descriptionTitle"`
		Description      string `json:"description"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	name := strings.TrimSpace(reqBody.Name)
	if name == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Category name is required")
	}

	now := time.Now().UTC()
	category := models.Category{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Slug:             models.Slugify(name),
		DescriptionTitle: reqBody.DescriptionTitle,
		Description:      reqBody.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := categoryCollection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Category with this name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error creating category")
	}

	return responses.Success(c, fiber.StatusCreated, "Category created successfully", "category", category)
}

func UpdateCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var reqBody struct {
		Name             *string `json:"name"`
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
			return responses.Error(c, fiber.StatusBadRequest, "Category name cannot be empty")
		}
		update["name"] = name
		update["slug"] = models.Slugify(name)
	}
	if reqBody.DescriptionTitle != nil {
		update["descriptionTitle"] = *reqBody.DescriptionTitle
	}
	if reqBody.Description != nil {
		update["description"] = *reqBody.Description
	}

	var category models.Category
	err = categoryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Category with this name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating category")
	}

	return responses.Success(c, fiber.StatusOK, "Category updated successfully", "category", category)
}

// DeleteCategory is guarded by the reverse-reference check and cascades to
// the category's subcategories when it passes.
func DeleteCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := categoryGuard.Delete(ctx, integrity.KindCategory, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return responses.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return responses.FromError(c, err)
	}

	return responses.Message(c, fiber.StatusOK, "Category and its subcategories deleted successfully")
}
