package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/contacts"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ContactRoutes(app *fiber.App) {
	app.Post("/api/contacts", controllers.CreateContact)

	app.Get("/api/contacts", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.GetAllContacts)
	app.Put("/api/contacts/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.MarkContactRead)
	app.Delete("/api/contacts/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeleteContact)
}
