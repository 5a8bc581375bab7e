package controllers

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/Likhith025/sensokart-sub001/configs"
	"github.com/Likhith025/sensokart-sub001/models"
	"github.com/Likhith025/sensokart-sub001/responses"
	"github.com/Likhith025/sensokart-sub001/services/mailer"
)

var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

var adminMailer mailer.Mailer = mailer.NewSMTPMailer(
	configs.EnvSMTPAddr(),
	configs.EnvSMTPUser(),
	configs.EnvSMTPPassword(),
	configs.EnvSMTPFrom(),
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func GetAllUsers(c *fiber.Ctx) error {
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
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}

	total, err := userCollection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting users")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := userCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching users")
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing users")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"pages": (total + limit - 1) / limit,
	})
}

// CreateUser provisions an account. Creating an admin account sends a
// welcome mail fire-and-forget.
func CreateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	email := strings.ToLower(strings.TrimSpace(reqBody.Email))
	switch {
	case strings.TrimSpace(reqBody.Name) == "":
		return responses.Error(c, fiber.StatusBadRequest, "Name is required")
	case !emailRegex.MatchString(email):
		return responses.Error(c, fiber.StatusBadRequest, "Please enter a valid email address")
	case len(reqBody.Password) < 8:
		return responses.Error(c, fiber.StatusBadRequest, "Passwords must be 8 letters long")
	}

	role := reqBody.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid role")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
	}

	now := time.Now().UTC()
	user := models.User{
		Id:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(reqBody.Name),
		Email:     email,
		Password:  string(hashed),
		Phone:     reqBody.Phone,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "User with same email already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error in saving user, please try again later")
	}

	if user.Role == models.RoleAdmin {
		mailer.Dispatch(adminMailer, mailer.Notification{
			Kind: mailer.KindNewAdminWelcome,
			To:   user.Email,
			Name: user.Name,
		})
	}

	return responses.Success(c, fiber.StatusCreated, "User created successfully", "user", user)
}

func UpdateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var reqBody struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"isActive"`
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
	if reqBody.Role != nil {
		if *reqBody.Role != models.RoleUser && *reqBody.Role != models.RoleAdmin {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid role")
		}
		update["role"] = *reqBody.Role
	}
	if reqBody.IsActive != nil {
		update["isActive"] = *reqBody.IsActive
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
	err = userCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating user")
	}

	return responses.Success(c, fiber.StatusOK, "User updated successfully", "user", user)
}

func DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	result, err := userCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting user")
	}
	if result.DeletedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "User not found")
	}

	return responses.Message(c, fiber.StatusOK, "User deleted successfully")
}
