package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/Likhith025/sensokart-sub001/configs"
	"github.com/Likhith025/sensokart-sub001/middlewares"
	"github.com/Likhith025/sensokart-sub001/models"
	"github.com/Likhith025/sensokart-sub001/responses"
	"github.com/Likhith025/sensokart-sub001/services/mailer"
)

var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

var userMailer mailer.Mailer = mailer.NewSMTPMailer(
	configs.EnvSMTPAddr(),
	configs.EnvSMTPUser(),
	configs.EnvSMTPPassword(),
	configs.EnvSMTPFrom(),
)

func createJwt(userId string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userId,
		"exp": time.Now().Add(time.Hour * 720).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJWTSecret()))
}

func UserLogin(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	email := strings.ToLower(strings.TrimSpace(reqBody.Email))
	if email == "" || reqBody.Password == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching from database")
	}
	if !user.IsActive {
		return responses.Error(c, fiber.StatusUnauthorized, "Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqBody.Password)); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := createJwt(user.Id.Hex())
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error while generating jwt token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Signed in successfully",
		"user":    user,
		"token":   token,
	})
}

func GetProfile(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
	}
	return responses.Success(c, fiber.StatusOK, "", "user", user)
}

// UpdateProfile lets the authenticated user change their own name, phone or
// password. A profile-updated notification goes out fire-and-forget.
func UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	current := middlewares.CurrentUser(c)
	if current == nil {
		return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
	}

	var reqBody struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if reqBody.Name != nil {
		name := strings.TrimSpace(*reqBody.Name)
		if name == "" {
			return responses.Error(c, fiber.StatusBadRequest, "Name cannot be empty")
		}
		update["name"] = name
	}
	if reqBody.Phone != nil {
		update["phone"] = *reqBody.Phone
	}
	if reqBody.Password != nil {
		if len(*reqBody.Password) < 8 {
			return responses.Error(c, fiber.StatusBadRequest, "Passwords must be 8 letters long")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*reqBody.Password), bcrypt.DefaultCost)
		if err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
		}
		update["password"] = string(hashed)
	}

	var user models.User
	err := userCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": current.Id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating profile")
	}

	mailer.Dispatch(userMailer, mailer.Notification{
		Kind: mailer.KindProfileUpdated,
		To:   user.Email,
		Name: user.Name,
	})

	return responses.Success(c, fiber.StatusOK, "Profile updated successfully", "user", user)
}
