package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/validation"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// ใช้ regex เดียวกับ email field เพื่อให้ผลตรวจตรงกัน
	_ = v.RegisterValidation("formemail", func(fl validator.FieldLevel) bool {
		return validation.IsEmail(validation.NormalizeEmail(fl.Field().String()))
	})

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks request DTO tags and turns failures into a
// *models.ValidationError keyed by JSON path (e.g. "fields[1].type").
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			FieldID: jsonPath(fe.Namespace()),
			Message: tagMessage(fe),
		})
	}
	return models.NewValidationError(fields)
}

// jsonPath drops the root struct name from a validator namespace.
func jsonPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "formemail":
		return fmt.Sprintf("Invalid email for %s", name)
	}
	return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
}
