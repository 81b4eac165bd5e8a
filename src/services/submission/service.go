package submission

import (
	"context"
	"log"
	"time"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/repository"
	"Backend-FormBuilder/src/validation"
)

// Notifier is told about every stored submission.
type Notifier interface {
	SubmissionCreated(ctx context.Context, sub *models.Submission, tmpl *models.Template) error
}

type nopNotifier struct{}

func (nopNotifier) SubmissionCreated(context.Context, *models.Submission, *models.Template) error {
	return nil
}

// Service accepts and lists submissions.
type Service struct {
	templates   repository.TemplateStore
	submissions repository.SubmissionStore
	notifier    Notifier
	now         func() time.Time
}

// NewService wires the stores; a nil notifier disables notifications.
func NewService(templates repository.TemplateStore, submissions repository.SubmissionStore, notifier Notifier) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		templates:   templates,
		submissions: submissions,
		notifier:    notifier,
		now:         time.Now,
	}
}

// CheckResponses runs the validator without storing anything.
func (s *Service) CheckResponses(ctx context.Context, templateID string, responses map[string]interface{}) (validation.Errors, error) {
	tmpl, err := s.templates.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, models.Unexpected("get template", err)
	}
	return validation.Validate(tmpl, responses), nil
}

// CreateSubmission validates responses against the template and stores
// the submission. Validation failures carry every field error; Message is
// the first one.
func (s *Service) CreateSubmission(ctx context.Context, req *models.SubmitFormRequest) (*models.Submission, error) {
	tmpl, err := s.templates.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		return nil, models.Unexpected("get template", err)
	}

	if err := validation.Validate(tmpl, req.Responses).Err(); err != nil {
		return nil, err
	}

	email := validation.NormalizeEmail(req.SubmitterEmail)
	if email != "" && !validation.IsEmail(email) {
		return nil, models.NewValidationError([]models.FieldError{{
			FieldID: "submitterEmail",
			Message: "Invalid submitter email",
		}})
	}

	sub := &models.Submission{
		TemplateID:     tmpl.ID,
		Responses:      req.Responses,
		SubmittedAt:    s.now().UTC(),
		SubmitterEmail: email,
	}
	created, err := s.submissions.CreateSubmission(ctx, sub)
	if err != nil {
		return nil, models.Unexpected("create submission", err)
	}

	// บันทึกสำเร็จแล้ว แจ้งเตือนล้มเหลวไม่ถือว่า submit ล้มเหลว
	if err := s.notifier.SubmissionCreated(ctx, created, tmpl); err != nil {
		log.Printf("⚠️ [submission] notify failed id=%s: %v", created.ID.Hex(), err)
	}
	return created, nil
}

// GetSubmission returns one submission by id.
func (s *Service) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	sub, err := s.submissions.GetSubmission(ctx, id)
	if err != nil {
		return nil, models.Unexpected("get submission", err)
	}
	return sub, nil
}

// GetSubmissionsByTemplateID lists submissions newest first. The template
// itself need not exist any more.
func (s *Service) GetSubmissionsByTemplateID(ctx context.Context, templateID string) ([]models.Submission, error) {
	subs, err := s.submissions.ListSubmissionsByTemplate(ctx, templateID)
	if err != nil {
		return nil, models.Unexpected("list submissions", err)
	}
	return subs, nil
}

// CountSubmissions reports how many submissions a template has received.
func (s *Service) CountSubmissions(ctx context.Context, templateID string) (int64, error) {
	n, err := s.submissions.CountSubmissionsByTemplate(ctx, templateID)
	if err != nil {
		return 0, models.Unexpected("count submissions", err)
	}
	return n, nil
}
