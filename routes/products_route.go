package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/products"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoutes(app *fiber.App) {
	app.Get("/api/products", controllers.GetAllProducts)
	app.Get("/api/products/slug/:slug", controllers.GetProductBySlug)
	app.Get("/api/products/:id", controllers.GetProduct)

	app.Post("/api/products", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.CreateProduct)
	app.Post("/api/products/upload", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UploadProductImages)
	app.Put("/api/products/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdateProduct)
	app.Delete("/api/products/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeleteProduct)
}
