package middlewares

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhith025/sensokart-sub001/apperrors"
	"github.com/Likhith025/sensokart-sub001/models"
)

func signToken(t *testing.T, secret string, id string) string {
	t.Helper()
	claims := jwt.MapClaims{"id": id, "exp": time.Now().Add(time.Hour).Unix()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func testApp(load UserLoader) *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireAuth(load), func(c *fiber.Ctx) error {
		return c.JSON(CurrentUser(c))
	})
	app.Get("/admin", RequireAuth(load), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	admin := &models.User{Id: primitive.NewObjectID(), Name: "Admin", Role: models.RoleAdmin, IsActive: true}
	member := &models.User{Id: primitive.NewObjectID(), Name: "Member", Role: models.RoleUser, IsActive: true}
	inactive := &models.User{Id: primitive.NewObjectID(), Name: "Gone", Role: models.RoleUser, IsActive: false}
	users := map[primitive.ObjectID]*models.User{admin.Id: admin, member.Id: member, inactive.Id: inactive}

	load := func(_ context.Context, id primitive.ObjectID) (*models.User, error) {
		if u, ok := users[id]; ok {
			return u, nil
		}
		return nil, apperrors.ErrNotFound
	}
	app := testApp(load)

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing token", "/me", "", fiber.StatusUnauthorized},
		{"malformed header", "/me", "Token abc", fiber.StatusUnauthorized},
		{"bad signature", "/me", "Bearer " + signToken(t, "wrong-secret", member.Id.Hex()), fiber.StatusUnauthorized},
		{"deleted user", "/me", "Bearer " + signToken(t, "test-secret", primitive.NewObjectID().Hex()), fiber.StatusUnauthorized},
		{"deactivated user", "/me", "Bearer " + signToken(t, "test-secret", inactive.Id.Hex()), fiber.StatusUnauthorized},
		{"valid user", "/me", "Bearer " + signToken(t, "test-secret", member.Id.Hex()), fiber.StatusOK},
		{"user on admin route", "/admin", "Bearer " + signToken(t, "test-secret", member.Id.Hex()), fiber.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + signToken(t, "test-secret", admin.Id.Hex()), fiber.StatusOK},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.path, nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if res.StatusCode != tc.want {
			t.Errorf("%s: got status %d, want %d", tc.name, res.StatusCode, tc.want)
		}
	}
}
