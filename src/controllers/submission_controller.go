package controllers

import (
	"log"
	"time"

	"Backend-FormBuilder/src/models"
	submissionSvc "Backend-FormBuilder/src/services/submission"
	"Backend-FormBuilder/src/utils"

	"github.com/gofiber/fiber/v2"
)

type SubmissionController struct {
	svc     *submissionSvc.Service
	timeout time.Duration
}

func NewSubmissionController(svc *submissionSvc.Service, timeout time.Duration) *SubmissionController {
	return &SubmissionController{svc: svc, timeout: timeout}
}

// --------- Create ---------

// CreateSubmission godoc
// @Summary      Submit a filled form
// @Description  Responses are validated against the template; every field error is returned in "errors"
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body body models.SubmitFormRequest true "Submission"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions [post]
func (h *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var req models.SubmitFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleServiceError(c, err)
	}

	log.Printf("[submission] IN template=%s responses=%d", req.TemplateID, len(req.Responses))

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	created, err := h.svc.CreateSubmission(ctx, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// --------- Read (by id) ---------

// GetSubmission godoc
// @Summary      Get a submission by ID
// @Tags         submissions
// @Produce      json
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func (h *SubmissionController) GetSubmission(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	sub, err := h.svc.GetSubmission(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(sub)
}

// --------- Read (by template) ---------

// GetSubmissionsByTemplate godoc
// @Summary      List submissions of a template
// @Description  Newest first. Works for deleted templates too
// @Tags         submissions
// @Produce      json
// @Param        templateId   path  string  true  "Template ID"
// @Success      200  {array}   models.Submission
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions/template/{templateId} [get]
func (h *SubmissionController) GetSubmissionsByTemplate(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	subs, err := h.svc.GetSubmissionsByTemplateID(ctx, c.Params("templateId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(subs)
}

// CountSubmissions godoc
// @Summary      Count submissions of a template
// @Tags         submissions
// @Produce      json
// @Param        templateId   path  string  true  "Template ID"
// @Success      200  {object}  models.SubmissionCount
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submissions/template/{templateId}/count [get]
func (h *SubmissionController) CountSubmissions(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	templateID := c.Params("templateId")
	n, err := h.svc.CountSubmissions(ctx, templateID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.SubmissionCount{TemplateID: templateID, Count: n})
}

// --------- Pre-check ---------

// ValidateResponses godoc
// @Summary      Check responses without submitting
// @Description  Runs the same validation as POST /submissions and reports every field error
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "Template ID"
// @Param        body  body  models.ValidateResponsesRequest  true  "Responses"
// @Success      200  {object}  models.ValidationResult
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id}/validate [post]
func (h *SubmissionController) ValidateResponses(c *fiber.Ctx) error {
	var req models.ValidateResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	errs, err := h.svc.CheckResponses(ctx, c.Params("id"), req.Responses)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.ValidationResult{Valid: errs.Empty(), Errors: errs.Map()})
}
