package routes

import (
	"Backend-FormBuilder/src/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// NewApp builds the Fiber app with middleware, Swagger UI and all routes.
func NewApp(deps Deps, allowedOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Form Builder API",
		ErrorHandler: middleware.ErrorHandler,
	})

	middleware.Register(app, allowedOrigins)

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	InitRoutes(app, deps)
	return app
}
