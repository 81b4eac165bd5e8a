package models

import "errors"

// NotFoundError is returned when a referenced template, field or submission does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// FieldError เก็บข้อความ error ของ field เดียว
type FieldError struct {
	FieldID string `json:"fieldId"`
	Message string `json:"message"`
}

// ValidationError carries one or more field-level messages. Message is the
// first one, which is what a single-message client shows.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FieldMap flattens Fields into fieldId -> message.
func (e *ValidationError) FieldMap() map[string]string {
	if len(e.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Fields))
	for _, fe := range e.Fields {
		out[fe.FieldID] = fe.Message
	}
	return out
}

// NewValidationError builds a ValidationError from ordered field errors.
func NewValidationError(fields []FieldError) *ValidationError {
	ve := &ValidationError{Fields: fields}
	if len(fields) > 0 {
		ve.Message = fields[0].Message
	}
	return ve
}

// UnexpectedError wraps persistence or internal failures.
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// Unexpected wraps err unless it is already one of the classified kinds.
func Unexpected(op string, err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	var ve *ValidationError
	var ue *UnexpectedError
	if errors.As(err, &nf) || errors.As(err, &ve) || errors.As(err, &ue) {
		return err
	}
	return &UnexpectedError{Op: op, Err: err}
}

var (
	ErrTemplateNotFound   = &NotFoundError{Resource: "Template"}
	ErrSubmissionNotFound = &NotFoundError{Resource: "Submission"}
	ErrFieldNotFound      = &NotFoundError{Resource: "Field"}
)
