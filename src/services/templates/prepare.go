package templates

import (
	"fmt"
	"strings"

	"Backend-FormBuilder/src/models"
)

// prepare normalizes t in place and enforces the save rules. Every problem
// is reported, keyed by "title", "fields" or the offending field id.
func (s *Service) prepare(t *models.Template) error {
	var errs []models.FieldError
	add := func(key, format string, args ...interface{}) {
		errs = append(errs, models.FieldError{FieldID: key, Message: fmt.Sprintf(format, args...)})
	}

	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		add("title", "Title is required")
	}
	if len(t.Fields) == 0 {
		add("fields", "At least one field is required")
	}

	seen := make(map[string]bool, len(t.Fields))
	for i := range t.Fields {
		f := &t.Fields[i]

		f.ID = strings.TrimSpace(f.ID)
		if f.ID == "" {
			f.ID = s.newID()
		}
		if seen[f.ID] {
			add(f.ID, "Duplicate field id %q", f.ID)
		}
		seen[f.ID] = true

		f.Label = strings.TrimSpace(f.Label)
		if f.Label == "" {
			add(f.ID, "Field %d needs a label", i+1)
			continue
		}
		if !f.Type.Valid() {
			add(f.ID, "%s has unsupported type %q", f.Label, f.Type)
			continue
		}

		if f.HasOptions() {
			f.Options = cleanOptions(f.Options)
			if len(f.Options) == 0 {
				add(f.ID, "%s needs at least one option", f.Label)
			}
		} else {
			f.Options = nil
		}

		if f.HasBounds() {
			if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
				add(f.ID, "%s min must not exceed max", f.Label)
			}
		} else {
			f.Min, f.Max = nil, nil
		}
	}
	t.Renumber()

	if len(errs) > 0 {
		return models.NewValidationError(errs)
	}
	return nil
}

// cleanOptions ตัดตัวเลือกที่ว่างออก
func cleanOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
