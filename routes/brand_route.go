package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/brands"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func BrandRoutes(app *fiber.App) {
	app.Get("/api/brand", controllers.GetAllBrands)
	app.Get("/api/brand/slug/:slug", controllers.GetBrandBySlug)
	app.Get("/api/brand/:id", controllers.GetBrand)

	app.Post("/api/brand", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.CreateBrand)
	app.Put("/api/brand/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdateBrand)
	app.Delete("/api/brand/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeleteBrand)
}
