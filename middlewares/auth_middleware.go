package middlewares

import (
	"context"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhith025/sensokart-sub001/models"
	"github.com/Likhith025/sensokart-sub001/responses"
)

// UserLoader resolves a token subject to a live user record. The token is
// never trusted on its own: every authenticated request re-reads the user.
type UserLoader func(ctx context.Context, id primitive.ObjectID) (*models.User, error)

const localsUserKey = "currentUser"

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// RequireAuth validates the bearer token and stores the resolved user in
// locals. Missing/invalid credentials yield 401.
func RequireAuth(load UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			return responses.Error(c, fiber.StatusUnauthorized, "Invalid authorization header format")
		}

		claims := &jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
		}

		subject, ok := (*claims)["id"].(string)
		if !ok || subject == "" {
			return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
		}
		userID, err := primitive.ObjectIDFromHex(subject)
		if err != nil {
			return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID in token")
		}

		user, err := load(c.Context(), userID)
		if err != nil || user == nil {
			return responses.Error(c, fiber.StatusUnauthorized, "Account no longer exists")
		}
		if !user.IsActive {
			return responses.Error(c, fiber.StatusUnauthorized, "Account is deactivated")
		}

		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// RequireAdmin gates a route to admin users. Must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
		}
		if user.Role != models.RoleAdmin {
			return responses.Error(c, fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUserKey).(*models.User)
	return user
}
