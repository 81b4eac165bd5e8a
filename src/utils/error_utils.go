// error_utils.go
package utils

import (
	"errors"
	"log"

	"Backend-FormBuilder/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps the error kinds to status codes:
// NotFound -> 404, Validation -> 400, anything else -> 500.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		return HandleError(c, fiber.StatusNotFound, nf.Error())
	}

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  fiber.StatusBadRequest,
			Message: ve.Message,
			Errors:  ve.FieldMap(),
		})
	}

	log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	return HandleError(c, fiber.StatusInternalServerError, "Internal server error")
}
