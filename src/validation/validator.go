// Package validation checks a response map against a template's fields.
//
// The same Validate call backs both the submission endpoint and the
// form-filling pre-check, so the two can never disagree.
package validation

import (
	"Backend-FormBuilder/src/models"
)

// Errors is the ordered list of field errors, in template field order.
type Errors []models.FieldError

// Empty reports whether validation passed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// First returns the first recorded error.
func (e Errors) First() (models.FieldError, bool) {
	if len(e) == 0 {
		return models.FieldError{}, false
	}
	return e[0], true
}

// Map flattens the errors into fieldId -> message. Never nil.
func (e Errors) Map() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.FieldID] = fe.Message
	}
	return out
}

// Err returns nil on success, otherwise a *models.ValidationError.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return models.NewValidationError(e)
}

// Validate checks every field of t in stored order and collects all errors.
// A field that fails the required check is not type-checked.
func Validate(t *models.Template, responses map[string]interface{}) Errors {
	var errs Errors
	if t == nil {
		return errs
	}
	for _, f := range t.Fields {
		if msg, ok := CheckField(f, ValueOf(responses, f.ID)); !ok {
			errs = append(errs, models.FieldError{FieldID: f.ID, Message: msg})
		}
	}
	return errs
}
