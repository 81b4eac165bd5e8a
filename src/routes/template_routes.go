package routes

import (
	"Backend-FormBuilder/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// TemplateRoutes กำหนด route สำหรับ template management
func TemplateRoutes(router fiber.Router, ctrl *controllers.TemplateController, subCtrl *controllers.SubmissionController) {
	templates := router.Group("/templates")

	templates.Post("/", ctrl.CreateTemplate)
	templates.Get("/", ctrl.GetAllTemplates)
	templates.Get("/:id", ctrl.GetTemplateByID)
	templates.Put("/:id", ctrl.UpdateTemplate)
	templates.Patch("/:id", ctrl.UpdateTemplate)
	templates.Delete("/:id", ctrl.DeleteTemplate)

	templates.Post("/:id/fields", ctrl.AppendField)
	templates.Delete("/:id/fields/:fieldId", ctrl.RemoveField)
	templates.Post("/:id/fields/:fieldId/move", ctrl.MoveField)

	templates.Post("/:id/validate", subCtrl.ValidateResponses)
}
