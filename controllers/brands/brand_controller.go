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

var brandCollection *mongo.Collection = configs.GetCollection(configs.DB, "brands")

var brandGuard = integrity.NewGuard(integrity.NewMongoStore(
	configs.GetCollection(configs.DB, "brands"),
	configs.GetCollection(configs.DB, "categories"),
	configs.GetCollection(configs.DB, "subcategories"),
	configs.GetCollection(configs.DB, "products"),
))

func GetAllBrands(c *fiber.Ctx) error {
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

	total, err := brandCollection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting brands")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := brandCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching brands")
	}
	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing brands")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"brands": brands,
		"total":  total,
		"page":   page,
		"pages":  (total + limit - 1) / limit,
	})
}

func GetBrand(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid brand ID")
	}

	var brand models.Brand
	err = brandCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Brand not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching brand")
	}

	return responses.Success(c, fiber.StatusOK, "", "brand", brand)
}

func GetBrandBySlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var brand models.Brand
	err := brandCollection.FindOne(ctx, bson.M{"slug": c.Params("slug")}).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Brand not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching brand")
	}

	return responses.Success(c, fiber.StatusOK, "", "brand", brand)
}

func CreateBrand(c *fiber.Ctx) error {
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
		return responses.Error(c, fiber.StatusBadRequest, "Brand name is required")
	}

	now := time.Now().UTC()
	brand := models.Brand{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Slug:             models.Slugify(name),
		DescriptionTitle: reqBody.DescriptionTitle,
		Description:      reqBody.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := brandCollection.InsertOne(ctx, brand); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Brand with this name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error creating brand")
	}

	return responses.Success(c, fiber.StatusCreated, "Brand created successfully", "brand", brand)
}

func UpdateBrand(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid brand ID")
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
			return responses.Error(c, fiber.StatusBadRequest, "Brand name cannot be empty")
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

	var brand models.Brand
	err = brandCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Brand not found")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Brand with this name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating brand")
	}

	return responses.Success(c, fiber.StatusOK, "Brand updated successfully", "brand", brand)
}

func DeleteBrand(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid brand ID")
	}

	if err := brandGuard.Delete(ctx, integrity.KindBrand, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return responses.Error(c, fiber.StatusNotFound, "Brand not found")
		}
		return responses.FromError(c, err)
	}

	return responses.Message(c, fiber.StatusOK, "Brand deleted successfully")
}
