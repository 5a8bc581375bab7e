package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/priorities"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PriorityRoutes(app *fiber.App) {
	app.Get("/api/priority", controllers.GetAllPriorities)
	app.Get("/api/priority/:id", controllers.GetPriority)

	app.Post("/api/priority", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.CreatePriority)
	app.Put("/api/priority/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdatePriority)
	app.Delete("/api/priority/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeletePriority)
}
