package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/users"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	app.Post("/api/user/login", controllers.UserLogin)

	app.Get("/api/user/profile", middlewares.RequireAuth(loadUser), controllers.GetProfile)
	app.Put("/api/user/profile", middlewares.RequireAuth(loadUser), controllers.UpdateProfile)
}
