package main

import (
	"log"

	"github.com/Likhith025/sensokart-sub001/configs"
	"github.com/Likhith025/sensokart-sub001/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	configs.LoadEnv()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	if err := configs.EnsureIndexes(configs.DB); err != nil {
		log.Fatal("failed to ensure indexes: ", err)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Sensokart API"})
	})

	routes.BrandRoutes(app)
	routes.CategoryRoutes(app)
	routes.SubCategoryRoutes(app)
	routes.ProductsRoutes(app)
	routes.PriorityRoutes(app)
	routes.EnquiryRoutes(app)
	routes.ContactRoutes(app)
	routes.PageRoutes(app)
	routes.UserRoutes(app)
	routes.AdminRoutes(app)
	routes.LookupRoutes(app)

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
