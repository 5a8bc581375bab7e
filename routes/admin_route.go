package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/admin"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	app.Get("/api/admin/users", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.GetAllUsers)
	app.Post("/api/admin/users", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.CreateUser)
	app.Put("/api/admin/users/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdateUser)
	app.Delete("/api/admin/users/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeleteUser)
}
