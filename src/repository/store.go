// Package repository holds the persistence collaborators for templates and
// submissions. Every implementation assigns ids and timestamps itself and
// reports a missing or malformed id as *models.NotFoundError.
package repository

import (
	"context"

	"Backend-FormBuilder/src/models"
)

// TemplateStore persists form templates.
type TemplateStore interface {
	// CreateTemplate assigns ID, CreatedAt and UpdatedAt.
	CreateTemplate(ctx context.Context, t *models.Template) (*models.Template, error)
	GetTemplate(ctx context.Context, id string) (*models.Template, error)
	// ListTemplates returns templates newest first along with the total match count.
	ListTemplates(ctx context.Context, params models.PaginationParams) ([]models.Template, int64, error)
	// UpdateTemplate replaces title, description and fields and refreshes UpdatedAt.
	UpdateTemplate(ctx context.Context, id string, t *models.Template) (*models.Template, error)
	DeleteTemplate(ctx context.Context, id string) error
}

// SubmissionStore persists submissions. There is no update or delete.
type SubmissionStore interface {
	// CreateSubmission assigns ID and, when zero, SubmittedAt.
	CreateSubmission(ctx context.Context, s *models.Submission) (*models.Submission, error)
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
	// ListSubmissionsByTemplate returns submissions newest first.
	ListSubmissionsByTemplate(ctx context.Context, templateID string) ([]models.Submission, error)
	CountSubmissionsByTemplate(ctx context.Context, templateID string) (int64, error)
}

// Store is the full persistence surface.
type Store interface {
	TemplateStore
	SubmissionStore
}
