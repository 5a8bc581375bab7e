package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Likhith025/sensokart-sub001/configs"
	"github.com/Likhith025/sensokart-sub001/models"
	"github.com/Likhith025/sensokart-sub001/responses"
	"github.com/Likhith025/sensokart-sub001/services/priorityref"
)

var priorityCollection *mongo.Collection = configs.GetCollection(configs.DB, "priorities")

var priorityResolver = priorityref.NewResolver(
	priorityref.NewMongoReferents(
		configs.GetCollection(configs.DB, "brands"),
		configs.GetCollection(configs.DB, "categories"),
		configs.GetCollection(configs.DB, "subcategories"),
	),
	priorityref.NewMongoStore(configs.GetCollection(configs.DB, "priorities")),
)

func GetAllPriorities(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if t := c.Query("type"); t != "" {
		kind, err := priorityref.ParseKind(t)
		if err != nil {
			return responses.FromError(c, err)
		}
		filter["type"] = string(kind)
	}

	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: 1}})
	cursor, err := priorityCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching priorities")
	}
	priorities := []models.Priority{}
	if err := cursor.All(ctx, &priorities); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing priorities")
	}

	return responses.Success(c, fiber.StatusOK, "", "priorities", priorities)
}

func GetPriority(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid priority ID")
	}

	var priority models.Priority
	err = priorityCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&priority)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Priority not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching priority")
	}

	// populate the referent for the detail view
	referent, err := priorityResolver.Resolve(ctx, priorityref.Ref{
		Kind: priorityref.Kind(priority.Type),
		ID:   priority.ObjectID,
	})
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"priority": priority,
		"referent": referent,
	})
}

func CreatePriority(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		ObjectID string `json:"objectId"`
		Priority int    `json:"priority"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if reqBody.Name == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Priority name is required")
	}

	kind, err := priorityref.ParseKind(reqBody.Type)
	if err != nil {
		return responses.FromError(c, err)
	}
	objectID, err := primitive.ObjectIDFromHex(reqBody.ObjectID)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid object ID")
	}

	priority, referent, err := priorityResolver.Create(ctx, reqBody.Name,
		priorityref.Ref{Kind: kind, ID: objectID}, reqBody.Priority)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Priority created successfully",
		"priority": priority,
		"referent": referent,
	})
}

func UpdatePriority(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid priority ID")
	}

	var reqBody struct {
		Name     *string `json:"name"`
		Type     *string `json:"type"`
		ObjectID *string `json:"objectId"`
		Rank     *int    `json:"priority"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	patch := priorityref.Patch{Name: reqBody.Name, Type: reqBody.Type, Priority: reqBody.Rank}
	if reqBody.ObjectID != nil {
		objectID, err := primitive.ObjectIDFromHex(*reqBody.ObjectID)
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid object ID")
		}
		patch.ObjectID = &objectID
	}

	priority, referent, err := priorityResolver.Update(ctx, id, patch)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Priority updated successfully",
		"priority": priority,
		"referent": referent,
	})
}

func DeletePriority(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid priority ID")
	}

	if err := priorityResolver.Delete(ctx, id); err != nil {
		return responses.FromError(c, err)
	}

	return responses.Message(c, fiber.StatusOK, "Priority deleted successfully")
}
