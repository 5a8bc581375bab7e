package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/lookup"

	"github.com/gofiber/fiber/v2"
)

func LookupRoutes(app *fiber.App) {
	app.Get("/api/resolve/:slug", controllers.ResolveSlug)
}
