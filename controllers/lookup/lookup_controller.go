package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/configs"
	"github.com/Likhith025/sensokart-sub001/responses"
	"github.com/Likhith025/sensokart-sub001/services/lookup"
)

var slugResolver = lookup.NewResolver(lookup.NewMongoFinder(
	configs.GetCollection(configs.DB, "brands"),
	configs.GetCollection(configs.DB, "categories"),
	configs.GetCollection(configs.DB, "subcategories"),
	configs.GetCollection(configs.DB, "products"),
))

// ResolveSlug fans out to all four sluggable collections and returns the
// highest-precedence hit tagged with its kind.
func ResolveSlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	slug := c.Params("slug")
	if slug == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Slug is required")
	}

	match, err := slugResolver.Resolve(ctx, slug)
	if errors.Is(err, apperrors.ErrNotFound) {
		return responses.Error(c, fiber.StatusNotFound, "Nothing found for this slug")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error resolving slug")
	}

	return responses.Success(c, fiber.StatusOK, "", "result", match)
}
