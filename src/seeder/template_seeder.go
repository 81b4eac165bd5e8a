package seeder

import (
	"context"
	"log"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/services/submission"
	"Backend-FormBuilder/src/services/templates"
)

func float(v float64) *float64 { return &v }

func sampleTemplates() []*models.CreateTemplateRequest {
	return []*models.CreateTemplateRequest{
		// Sample Template 1: Course Feedback
		{
			Title:       "Course Feedback",
			Description: "Please provide your feedback about the course and instructor",
			Fields: []models.Field{
				{Label: "Email", Type: models.FieldEmail, Required: true, Placeholder: "you@example.com"},
				{Label: "Overall experience", Type: models.FieldTextarea, Required: true},
				{
					Label:    "Course difficulty",
					Type:     models.FieldSelect,
					Required: true,
					Options:  []string{"Very Easy", "Easy", "Moderate", "Difficult", "Very Difficult"},
				},
				{Label: "Rating", Type: models.FieldNumber, Required: true, Min: float(1), Max: float(5)},
			},
		},
		// Sample Template 2: Event Registration
		{
			Title:       "Tech Conference Registration",
			Description: "Register for the annual technology conference",
			Fields: []models.Field{
				{Label: "Full Name", Type: models.FieldText, Required: true},
				{Label: "Email Address", Type: models.FieldEmail, Required: true},
				{Label: "Company/Organization", Type: models.FieldText},
				{
					Label:   "Primary role",
					Type:    models.FieldSelect,
					Options: []string{"Developer", "Designer", "Manager", "Student", "Other"},
				},
				{Label: "Arrival date", Type: models.FieldDate, Required: true},
				{Label: "Guests", Type: models.FieldNumber, Min: float(0), Max: float(3)},
			},
		},
	}
}

// SeedSampleTemplates creates sample templates when the store is empty.
func SeedSampleTemplates(ctx context.Context, svc *templates.Service) ([]*models.Template, error) {
	_, total, err := svc.GetTemplates(ctx, models.PaginationParams{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}
	if total > 0 {
		log.Printf("Skipping template seed, %d templates already stored", total)
		return nil, nil
	}

	var created []*models.Template
	for _, req := range sampleTemplates() {
		tmpl, err := svc.CreateTemplate(ctx, req)
		if err != nil {
			log.Printf("Error creating template '%s': %v", req.Title, err)
			continue
		}
		log.Printf("✅ Created template: %s (ID: %s)", tmpl.Title, tmpl.ID.Hex())
		created = append(created, tmpl)
	}
	return created, nil
}

// SeedSampleSubmissions answers every field of tmpl and submits the result
// through the normal validation path.
func SeedSampleSubmissions(ctx context.Context, svc *submission.Service, tmpl *models.Template) error {
	answers := make(map[string]interface{}, len(tmpl.Fields))
	for _, f := range tmpl.Fields {
		answers[f.ID] = sampleAnswer(f)
	}

	result, err := svc.CreateSubmission(ctx, &models.SubmitFormRequest{
		TemplateID: tmpl.ID.Hex(),
		Responses:  answers,
	})
	if err != nil {
		return err
	}
	log.Printf("✅ Created submission (ID: %s)", result.ID.Hex())
	return nil
}

func sampleAnswer(f models.Field) interface{} {
	switch f.Type {
	case models.FieldEmail:
		return "student@example.com"
	case models.FieldNumber:
		if f.Min != nil {
			return *f.Min
		}
		return 1
	case models.FieldDate:
		return "2026-01-15"
	case models.FieldSelect:
		return f.Options[0]
	default:
		return "Sample answer"
	}
}
