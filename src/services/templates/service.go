package templates

import (
	"context"
	"fmt"
	"log"
	"strings"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/repository"

	"github.com/google/uuid"
)

// Service implements template authoring on top of a TemplateStore.
type Service struct {
	store repository.TemplateStore
	newID func() string
}

func NewService(store repository.TemplateStore) *Service {
	return &Service{store: store, newID: newFieldID}
}

func newFieldID() string {
	return "field_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CreateTemplate validates and stores a new template.
func (s *Service) CreateTemplate(ctx context.Context, req *models.CreateTemplateRequest) (*models.Template, error) {
	t := &models.Template{
		Title:       req.Title,
		Description: req.Description,
		Fields:      req.Fields,
	}
	if err := s.prepare(t); err != nil {
		return nil, err
	}

	created, err := s.store.CreateTemplate(ctx, t)
	if err != nil {
		return nil, models.Unexpected("create template", err)
	}
	log.Printf("[template] created id=%s fields=%d", created.ID.Hex(), len(created.Fields))
	return created, nil
}

// GetTemplate returns the template or *models.NotFoundError.
func (s *Service) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	t, err := s.store.GetTemplate(ctx, id)
	if err != nil {
		return nil, models.Unexpected("get template", err)
	}
	return t, nil
}

// GetTemplates lists templates newest first.
func (s *Service) GetTemplates(ctx context.Context, params models.PaginationParams) ([]models.Template, int64, error) {
	list, total, err := s.store.ListTemplates(ctx, params)
	if err != nil {
		return nil, 0, models.Unexpected("list templates", err)
	}
	return list, total, nil
}

// UpdateTemplate merges the patch into the stored template and saves it
// under the same rules as CreateTemplate.
func (s *Service) UpdateTemplate(ctx context.Context, id string, req *models.UpdateTemplateRequest) (*models.Template, error) {
	return s.mutate(ctx, id, func(t *models.Template) error {
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.Fields != nil {
			t.Fields = *req.Fields
		}
		return nil
	})
}

// DeleteTemplate removes the template. Its submissions are kept.
func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.store.DeleteTemplate(ctx, id); err != nil {
		return models.Unexpected("delete template", err)
	}
	log.Printf("[template] deleted id=%s", id)
	return nil
}

// AppendField adds a field at the end of the template.
func (s *Service) AppendField(ctx context.Context, id string, f models.Field) (*models.Template, error) {
	return s.mutate(ctx, id, func(t *models.Template) error {
		t.AppendField(f)
		return nil
	})
}

// RemoveField drops a field by id. Removing the last field fails validation.
func (s *Service) RemoveField(ctx context.Context, id, fieldID string) (*models.Template, error) {
	return s.mutate(ctx, id, func(t *models.Template) error {
		if !t.RemoveField(fieldID) {
			return models.ErrFieldNotFound
		}
		return nil
	})
}

// MoveField swaps a field with its neighbour; direction is "up" or "down".
func (s *Service) MoveField(ctx context.Context, id, fieldID, direction string) (*models.Template, error) {
	return s.mutate(ctx, id, func(t *models.Template) error {
		var found bool
		switch direction {
		case "up":
			found = t.MoveFieldUp(fieldID)
		case "down":
			found = t.MoveFieldDown(fieldID)
		default:
			return models.NewValidationError([]models.FieldError{{
				FieldID: "direction",
				Message: fmt.Sprintf("direction must be up or down, got %q", direction),
			}})
		}
		if !found {
			return models.ErrFieldNotFound
		}
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, id string, apply func(t *models.Template) error) (*models.Template, error) {
	t, err := s.store.GetTemplate(ctx, id)
	if err != nil {
		return nil, models.Unexpected("get template", err)
	}
	if err := apply(t); err != nil {
		return nil, err
	}
	if err := s.prepare(t); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateTemplate(ctx, id, t)
	if err != nil {
		return nil, models.Unexpected("update template", err)
	}
	return updated, nil
}
