package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/pages"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PageRoutes(app *fiber.App) {
	app.Get("/api/page", controllers.GetAllPages)
	app.Get("/api/page/slug/:slug", controllers.GetPageBySlug)

	app.Post("/api/page", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.CreatePage)
	app.Put("/api/page/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdatePage)
	app.Delete("/api/page/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeletePage)
}
