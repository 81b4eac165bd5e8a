package controllers

import (
	"strconv"
	"time"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/services/templates"
	"Backend-FormBuilder/src/utils"

	"github.com/gofiber/fiber/v2"
)

type TemplateController struct {
	svc     *templates.Service
	timeout time.Duration
}

func NewTemplateController(svc *templates.Service, timeout time.Duration) *TemplateController {
	return &TemplateController{svc: svc, timeout: timeout}
}

// CreateTemplate godoc
// @Summary      Create a new form template
// @Description  Create a template with an ordered list of fields
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body body models.CreateTemplateRequest true "Template object"
// @Success      201  {object}  models.Template
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /templates [post]
func (h *TemplateController) CreateTemplate(c *fiber.Ctx) error {
	var req models.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	tmpl, err := h.svc.CreateTemplate(ctx, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tmpl)
}

// GetAllTemplates godoc
// @Summary      Get all templates
// @Description  Newest first. page/limit are optional; X-Total-Count carries the match count
// @Tags         templates
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page (0 = all)"
// @Param        search  query  string  false  "Title contains (case-insensitive)"
// @Success      200  {array}   models.Template
// @Failure      500  {object}  models.ErrorResponse
// @Router       /templates [get]
func (h *TemplateController) GetAllTemplates(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	list, total, err := h.svc.GetTemplates(ctx, params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return c.JSON(list)
}

// GetTemplateByID godoc
// @Summary      Get a template by ID
// @Tags         templates
// @Produce      json
// @Param        id   path  string  true  "Template ID"
// @Success      200  {object}  models.Template
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /templates/{id} [get]
func (h *TemplateController) GetTemplateByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	tmpl, err := h.svc.GetTemplate(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(tmpl)
}

// UpdateTemplate godoc
// @Summary      Update a template
// @Description  Partial update; omitted members keep their stored value
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id     path  string                        true  "Template ID"
// @Param        body   body  models.UpdateTemplateRequest  true  "Template patch"
// @Success      200  {object}  models.Template
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /templates/{id} [put]
func (h *TemplateController) UpdateTemplate(c *fiber.Ctx) error {
	var req models.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	tmpl, err := h.svc.UpdateTemplate(ctx, c.Params("id"), &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(tmpl)
}

// DeleteTemplate godoc
// @Summary      Delete a template
// @Description  Submissions of the template are kept
// @Tags         templates
// @Produce      json
// @Param        id   path  string  true  "Template ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /templates/{id} [delete]
func (h *TemplateController) DeleteTemplate(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	if err := h.svc.DeleteTemplate(ctx, c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Template deleted"})
}

// AppendField godoc
// @Summary      Append a field
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id     path  string        true  "Template ID"
// @Param        body   body  models.Field  true  "Field"
// @Success      200  {object}  models.Template
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id}/fields [post]
func (h *TemplateController) AppendField(c *fiber.Ctx) error {
	var field models.Field
	if err := c.BodyParser(&field); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&field); err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	tmpl, err := h.svc.AppendField(ctx, c.Params("id"), field)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(tmpl)
}

// RemoveField godoc
// @Summary      Remove a field
// @Tags         templates
// @Produce      json
// @Param        id       path  string  true  "Template ID"
// @Param        fieldId  path  string  true  "Field ID"
// @Success      200  {object}  models.Template
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id}/fields/{fieldId} [delete]
func (h *TemplateController) RemoveField(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	tmpl, err := h.svc.RemoveField(ctx, c.Params("id"), c.Params("fieldId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(tmpl)
}

// MoveField godoc
// @Summary      Move a field up or down by one position
// @Tags         templates
// @Produce      json
// @Param        id         path   string  true  "Template ID"
// @Param        fieldId    path   string  true  "Field ID"
// @Param        direction  query  string  true  "up or down"
// @Success      200  {object}  models.Template
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id}/fields/{fieldId}/move [post]
func (h *TemplateController) MoveField(c *fiber.Ctx) error {
	var req models.MoveFieldRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if req.Direction == "" && len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	tmpl, err := h.svc.MoveField(ctx, c.Params("id"), c.Params("fieldId"), req.Direction)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(tmpl)
}
