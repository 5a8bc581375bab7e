package controllers

import (
	"context"
	"errors"
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

var pageCollection *mongo.Collection = configs.GetCollection(configs.DB, "pages")

func GetAllPages(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if v := c.Query("isPublished"); v != "" {
		filter["isPublished"] = v == "true"
	}

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := pageCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching pages")
	}
	pages := []models.Page{}
	if err := cursor.All(ctx, &pages); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing pages")
	}

	return responses.Success(c, fiber.StatusOK, "", "pages", pages)
}

func GetPageBySlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var page models.Page
	err := pageCollection.FindOne(ctx, bson.M{"slug": c.Params("slug")}).Decode(&page)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Page not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching page")
	}

	return responses.Success(c, fiber.StatusOK, "", "page", page)
}

func CreatePage(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Title           string `json:"title"`
		Content         string `json:"content"`
		MetaTitle       string `json:"metaTitle"`
		MetaDescription string `json:"metaDescription"`
		IsPublished     *bool  `json:"isPublished"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	title := strings.TrimSpace(reqBody.Title)
	if title == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Page title is required")
	}

	isPublished := true
	if reqBody.IsPublished != nil {
		isPublished = *reqBody.IsPublished
	}

	now := time.Now().UTC()
	page := models.Page{
		ID:              primitive.NewObjectID(),
		Title:           title,
		Slug:            models.Slugify(title),
		Content:         reqBody.Content,
		MetaTitle:       reqBody.MetaTitle,
		MetaDescription: reqBody.MetaDescription,
		IsPublished:     isPublished,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := pageCollection.InsertOne(ctx, page); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Page with this slug already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error creating page")
	}

	return responses.Success(c, fiber.StatusCreated, "Page created successfully", "page", page)
}

func UpdatePage(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid page ID")
	}

	var reqBody struct {
		Title           *string `json:"title"`
		Content         *string `json:"content"`
		MetaTitle       *string `json:"metaTitle"`
		MetaDescription *string `json:"metaDescription"`
		IsPublished     *bool   `json:"isPublished"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if reqBody.Title != nil {
		title := strings.TrimSpace(*reqBody.Title)
		if title == "" {
			return responses.Error(c, fiber.StatusBadRequest, "Page title cannot be empty")
		}
		update["title"] = title
		update["slug"] = models.Slugify(title)
	}
	if reqBody.Content != nil {
		update["content"] = *reqBody.Content
	}
	if reqBody.MetaTitle != nil {
		update["metaTitle"] = *reqBody.MetaTitle
	}
	if reqBody.MetaDescription != nil {
		update["metaDescription"] = *reqBody.MetaDescription
	}
	if reqBody.IsPublished != nil {
		update["isPublished"] = *reqBody.IsPublished
	}

	var page models.Page
	err = pageCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&page)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Page not found")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Page with this slug already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating page")
	}

	return responses.Success(c, fiber.StatusOK, "Page updated successfully", "page", page)
}

func DeletePage(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid page ID")
	}

	result, err := pageCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting page")
	}
	if result.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Page not found")
	}

	return responses.Message(c, fiber.StatusOK, "Page deleted successfully")
}
