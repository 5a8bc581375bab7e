package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/categories"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App) {
	app.Get("/api/category", controllers.GetAllCategories)
	app.Get("/api/category/slug/:slug", controllers.GetCategoryBySlug)
	app.Get("/api/category/:id", controllers.GetCategory)

	app.Post("/api/category", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.CreateCategory)
	app.Put("/api/category/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdateCategory)

	// delete cascades to the category's subcategories once the
	// reverse-reference check passes
	app.Delete("/api/category/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeleteCategory)
}
