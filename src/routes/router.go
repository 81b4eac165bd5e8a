package routes

import (
	"time"

	"Backend-FormBuilder/src/controllers"
	"Backend-FormBuilder/src/repository"
	submissionService "Backend-FormBuilder/src/services/submission"
	templateService "Backend-FormBuilder/src/services/templates"

	"github.com/gofiber/fiber/v2"
)

// Deps is everything the routes need from main.
type Deps struct {
	Templates      repository.TemplateStore
	Submissions    repository.SubmissionStore
	Notifier       submissionService.Notifier
	RequestTimeout time.Duration
}

func InitRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	templateCtrl := controllers.NewTemplateController(
		templateService.NewService(deps.Templates), deps.RequestTimeout)
	submissionCtrl := controllers.NewSubmissionController(
		submissionService.NewService(deps.Templates, deps.Submissions, deps.Notifier), deps.RequestTimeout)

	TemplateRoutes(api, templateCtrl, submissionCtrl)
	SubmissionRoutes(api, submissionCtrl)

	// Route เช็คว่า API ทำงานอยู่
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Server is running!"})
	})
}
