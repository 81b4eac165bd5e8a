// file: src/routes/submission_routes.go
package routes

import (
	"Backend-FormBuilder/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func SubmissionRoutes(router fiber.Router, ctrl *controllers.SubmissionController) {
	submissions := router.Group("/submissions")

	// Create
	submissions.Post("/", ctrl.CreateSubmission)

	// Read
	submissions.Get("/template/:templateId", ctrl.GetSubmissionsByTemplate) // GET /submissions/template/:templateId
	submissions.Get("/template/:templateId/count", ctrl.CountSubmissions)
	submissions.Get("/:id", ctrl.GetSubmission) // GET /submissions/:id
}
