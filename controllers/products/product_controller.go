package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
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
	"github.com/Likhith025/sensokart-sub001/services/assets"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")
var brandCollection *mongo.Collection = configs.GetCollection(configs.DB, "brands")
var categoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "categories")
var subCategoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "subcategories")

var assetStorage assets.Storage = assets.NewHTTPStorage(configs.EnvAssetStoreURL(), configs.EnvAssetStoreKey())

func GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if limit < 1 {
		limit = 10
	}

	filter := bson.M{}
	for _, ref := range []string{"brand", "category", "subCategory"} {
		if v := c.Query(ref); v != "" {
			id, err := primitive.ObjectIDFromHex(v)
			if err != nil {
				return responses.Error(c, fiber.StatusBadRequest, "Invalid "+ref+" ID")
			}
			filter[ref] = id
		}
	}
	if v := c.Query("isActive"); v != "" {
		filter["isActive"] = v == "true"
	}
	if v := c.Query("isFeatured"); v != "" {
		filter["isFeatured"] = v == "true"
	}
	if q := c.Query("q"); q != "" {
		filter["name"] = bson.M{"$regex": q, "$options": "i"}
	}
	priceRange := bson.M{}
	if v := c.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			priceRange["$gte"] = min
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			priceRange["$lte"] = max
		}
	}
	if len(priceRange) > 0 {
		filter["price"] = priceRange
	}

	sortField := c.Query("sort", "createdAt")
	sortOrder := -1
	if c.Query("order") == "asc" {
		sortOrder = 1
	}

	total, err := productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting products")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := productCollection.Find(ctx, filter, opts)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching products")
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing products")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"products": products,
		"total":    total,
		"page":     page,
		"pages":    (total + limit - 1) / limit,
	})
}

func GetProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	return responses.Success(c, fiber.StatusOK, "", "product", product)
}

func GetProductBySlug(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := productCollection.FindOne(ctx, bson.M{"slug": c.Params("slug")}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	return responses.Success(c, fiber.StatusOK, "", "product", product)
}

type productRequest struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	SalePrice      *float64          `json:"salePrice"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	SubCategory    string            `json:"subCategory"`
	Quantity       int               `json:"quantity"`
	CoverPhoto     string            `json:"coverPhoto"`
	Images         []string          `json:"images"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	IsActive       *bool             `json:"isActive"`
	IsFeatured     *bool             `json:"isFeatured"`
	SKU            string            `json:"sku"`
}

// referencesExist validates the brand/category/subCategory ids against their
// collections.
func referencesExist(ctx context.Context, brand, category, subCategory primitive.ObjectID) (string, error) {
	checks := []struct {
		coll *mongo.Collection
		id   primitive.ObjectID
		name string
	}{
		{brandCollection, brand, "Brand"},
		{categoryCollection, category, "Category"},
		{subCategoryCollection, subCategory, "Subcategory"},
	}
	for _, check := range checks {
		count, err := check.coll.CountDocuments(ctx, bson.M{"_id": check.id})
		if err != nil {
			return "", err
		}
		if count == 0 {
			return check.name, nil
		}
	}
	return "", nil
}

func CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody productRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	name := strings.TrimSpace(reqBody.Name)
	switch {
	case name == "":
		return responses.Error(c, fiber.StatusBadRequest, "Product name is required")
	case strings.TrimSpace(reqBody.SKU) == "":
		return responses.Error(c, fiber.StatusBadRequest, "SKU is required")
	case reqBody.Price < 0:
		return responses.Error(c, fiber.StatusBadRequest, "Price cannot be negative")
	case reqBody.SalePrice != nil && *reqBody.SalePrice < 0:
		return responses.Error(c, fiber.StatusBadRequest, "Sale price cannot be negative")
	case reqBody.Quantity < 0:
		return responses.Error(c, fiber.StatusBadRequest, "Quantity cannot be negative")
	}

	brandID, err := primitive.ObjectIDFromHex(reqBody.Brand)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid brand ID")
	}
	categoryID, err := primitive.ObjectIDFromHex(reqBody.Category)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	subCategoryID, err := primitive.ObjectIDFromHex(reqBody.SubCategory)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid subcategory ID")
	}

	missing, err := referencesExist(ctx, brandID, categoryID, subCategoryID)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error validating references")
	}
	if missing != "" {
		return responses.Error(c, fiber.StatusNotFound, missing+" not found")
	}

	isActive := true
	if reqBody.IsActive != nil {
		isActive = *reqBody.IsActive
	}
	isFeatured := false
	if reqBody.IsFeatured != nil {
		isFeatured = *reqBody.IsFeatured
	}
	if reqBody.Images == nil {
		reqBody.Images = []string{}
	}
	if reqBody.Features == nil {
		reqBody.Features = []string{}
	}
	if reqBody.Specifications == nil {
		reqBody.Specifications = map[string]string{}
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Slug:           models.Slugify(name),
		Description:    reqBody.Description,
		Price:          reqBody.Price,
		SalePrice:      reqBody.SalePrice,
		Brand:          brandID,
		Category:       categoryID,
		SubCategory:    subCategoryID,
		Quantity:       reqBody.Quantity,
		CoverPhoto:     reqBody.CoverPhoto,
		Images:         reqBody.Images,
		Features:       reqBody.Features,
		Specifications: reqBody.Specifications,
		Ratings:        models.Ratings{},
		IsActive:       isActive,
		IsFeatured:     isFeatured,
		SKU:            strings.TrimSpace(reqBody.SKU),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := productCollection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Product with this SKU or name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error creating product")
	}

	return responses.Success(c, fiber.StatusCreated, "Product created successfully", "product", product)
}

func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var existing models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	var reqBody struct {
		Name           *string            `json:"name"`
		Description    *string            `json:"description"`
		Price          *float64           `json:"price"`
		SalePrice      *float64           `json:"salePrice"`
		Brand          *string            `json:"brand"`
		Category       *string            `json:"category"`
		SubCategory    *string            `json:"subCategory"`
		Quantity       *int               `json:"quantity"`
		CoverPhoto     *string            `json:"coverPhoto"`
		Images         *[]string          `json:"images"`
		Features       *[]string          `json:"features"`
		Specifications *map[string]string `json:"specifications"`
		IsActive       *bool              `json:"isActive"`
		IsFeatured     *bool              `json:"isFeatured"`
		SKU            *string            `json:"sku"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if reqBody.Name != nil {
		name := strings.TrimSpace(*reqBody.Name)
		if name == "" {
			return responses.Error(c, fiber.StatusBadRequest, "Product name cannot be empty")
		}
		update["name"] = name
		update["slug"] = models.Slugify(name)
	}
	if reqBody.Description != nil {
		update["description"] = *reqBody.Description
	}
	if reqBody.Price != nil {
		if *reqBody.Price < 0 {
			return responses.Error(c, fiber.StatusBadRequest, "Price cannot be negative")
		}
		update["price"] = *reqBody.Price
	}
	if reqBody.SalePrice != nil {
		if *reqBody.SalePrice < 0 {
			return responses.Error(c, fiber.StatusBadRequest, "Sale price cannot be negative")
		}
		update["salePrice"] = *reqBody.SalePrice
	}
	if reqBody.Quantity != nil {
		if *reqBody.Quantity < 0 {
			return responses.Error(c, fiber.StatusBadRequest, "Quantity cannot be negative")
		}
		update["quantity"] = *reqBody.Quantity
	}
	if reqBody.CoverPhoto != nil {
		update["coverPhoto"] = *reqBody.CoverPhoto
	}
	if reqBody.Images != nil {
		update["images"] = *reqBody.Images
	}
	if reqBody.Features != nil {
		update["features"] = *reqBody.Features
	}
	if reqBody.Specifications != nil {
		update["specifications"] = *reqBody.Specifications
	}
	if reqBody.IsActive != nil {
		update["isActive"] = *reqBody.IsActive
	}
	if reqBody.IsFeatured != nil {
		update["isFeatured"] = *reqBody.IsFeatured
	}
	if reqBody.SKU != nil {
		sku := strings.TrimSpace(*reqBody.SKU)
		if sku == "" {
			return responses.Error(c, fiber.StatusBadRequest, "SKU cannot be empty")
		}
		update["sku"] = sku
	}

	// reference changes are re-validated against their collections
	brandID, categoryID, subCategoryID := existing.Brand, existing.Category, existing.SubCategory
	refChanged := false
	if reqBody.Brand != nil {
		if brandID, err = primitive.ObjectIDFromHex(*reqBody.Brand); err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid brand ID")
		}
		update["brand"] = brandID
		refChanged = true
	}
	if reqBody.Category != nil {
		if categoryID, err = primitive.ObjectIDFromHex(*reqBody.Category); err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid category ID")
		}
		update["category"] = categoryID
		refChanged = true
	}
	if reqBody.SubCategory != nil {
		if subCategoryID, err = primitive.ObjectIDFromHex(*reqBody.SubCategory); err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid subcategory ID")
		}
		update["subCategory"] = subCategoryID
		refChanged = true
	}
	if refChanged {
		missing, err := referencesExist(ctx, brandID, categoryID, subCategoryID)
		if err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error validating references")
		}
		if missing != "" {
			return responses.Error(c, fiber.StatusNotFound, missing+" not found")
		}
	}

	var product models.Product
	err = productCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return responses.Error(c, fiber.StatusConflict, "Product with this SKU or name already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating product")
	}

	return responses.Success(c, fiber.StatusOK, "Product updated successfully", "product", product)
}

func DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	if _, err := productCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting product")
	}

	// stored images are removed best-effort; a failed blob delete never
	// rolls back the document delete
	go func(urls []string) {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		for _, u := range urls {
			if u == "" {
				continue
			}
			if err := assetStorage.Delete(cleanupCtx, u); err != nil {
				log.Printf("deleting asset %s: %v", u, err)
			}
		}
	}(append(product.Images, product.CoverPhoto))

	return responses.Message(c, fiber.StatusOK, "Product deleted successfully")
}

// UploadProductImages accepts multipart files and returns their public URLs.
func UploadProductImages(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
	defer cancel()

	form, err := c.MultipartForm()
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return responses.Error(c, fiber.StatusBadRequest, "No images provided")
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Could not read uploaded file")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return responses.Error(c, fiber.StatusBadRequest, "Could not read uploaded file")
		}

		url, err := assetStorage.Upload(ctx, data, "products", file.Filename)
		if err != nil {
			return responses.Error(c, fiber.StatusBadGateway, "Error uploading image")
		}
		urls = append(urls, url)
	}

	return responses.Success(c, fiber.StatusCreated, "Images uploaded successfully", "urls", urls)
}
