package validation

import (
	"fmt"
	"regexp"
	"strings"

	"Backend-FormBuilder/src/models"

	"github.com/spf13/cast"
)

var (
	// local@domain.tld, no whitespace or extra '@' anywhere
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
)

// NormalizeEmail trims and lowercases an address the way submissions store it.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsEmail reports whether s matches the e-mail shape accepted by email fields.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// rule checks a present value and returns a message when it is invalid.
type rule func(f models.Field, v Value) (string, bool)

// rules ไม่มี entry สำหรับ text/textarea/date/select: ตรวจแค่ required
var rules = map[models.FieldType]rule{
	models.FieldEmail:  checkEmail,
	models.FieldNumber: checkNumber,
}

// RequiredMessage is the error recorded for a required field left blank.
func RequiredMessage(f models.Field) string {
	return fmt.Sprintf("%s is required", f.Label)
}

func checkEmail(f models.Field, v Value) (string, bool) {
	if IsEmail(v.Text()) {
		return "", true
	}
	return fmt.Sprintf("Invalid email for %s", f.Label), false
}

func checkNumber(f models.Field, v Value) (string, bool) {
	n, ok := v.AsNumber()
	if !ok {
		return fmt.Sprintf("%s must be a number", f.Label), false
	}
	if f.Min != nil && n < *f.Min {
		return fmt.Sprintf("%s must be at least %s", f.Label, cast.ToString(*f.Min)), false
	}
	if f.Max != nil && n > *f.Max {
		return fmt.Sprintf("%s must be at most %s", f.Label, cast.ToString(*f.Max)), false
	}
	return "", true
}

// CheckField applies the presence rule and then the type rule for f.
func CheckField(f models.Field, v Value) (string, bool) {
	if !v.Present() {
		if f.Required {
			return RequiredMessage(f), false
		}
		return "", true
	}
	if r, ok := rules[f.Type]; ok {
		return r(f, v)
	}
	return "", true
}
