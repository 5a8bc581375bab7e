package routes

import (
	controllers "github.com/Likhith025/sensokart-sub001/controllers/enquiries"
	"github.com/Likhith025/sensokart-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func EnquiryRoutes(app *fiber.App) {
	// quote requests come from the public storefront
	app.Post("/api/enquiry", controllers.CreateEnquiry)

	app.Get("/api/enquiry", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.GetAllEnquiries)
	app.Get("/api/enquiry/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.GetEnquiry)
	app.Put("/api/enquiry/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.UpdateEnquiry)
	app.Delete("/api/enquiry/:id", middlewares.RequireAuth(loadUser), middlewares.RequireAdmin(), controllers.DeleteEnquiry)
}
