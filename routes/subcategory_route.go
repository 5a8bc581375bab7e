package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/subcategories"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func SubCategoryRoutes(app *fiber.App) {
	app.Get("/api/subcategory", controllers.GetAllSubCategories)
	app.Get("/api/subcategory/:id", controllers.GetSubCategory)

	app.Post("/api/subcategory", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.CreateSubCategory)
	app.Put("/api/subcategory/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdateSubCategory)
	app.Delete("/api/subcategory/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeleteSubCategory)
}
