package responses

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Likhith025/sensokart-sub001/apperrors"
)

// Success writes {message, <key>: value}.
func Success(c *fiber.Ctx, status int, message, key string, value interface{}) error {
	body := fiber.Map{key: value}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

// Message writes {message} with no entity payload.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// Error writes {error}.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// FromError maps a service error to its HTTP status and envelope. Delete
// conflicts carry the blocking-reference count and sample product names.
func FromError(c *fiber.Ctx, err error) error {
	var conflict *apperrors.ReferencedConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":        conflict.Error(),
			"productCount": conflict.Count,
			"products":     conflict.Samples,
		})
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrReferentNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateKey),
		errors.Is(err, apperrors.ErrDuplicatePriority),
		errors.Is(err, apperrors.ErrSequenceContention):
		return Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrInvalidType),
		errors.Is(err, apperrors.ErrValidation):
		return Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrCorruptSequence):
		return Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
