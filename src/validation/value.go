package validation

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// Kind tags what a raw response value turned out to be.
type Kind int

const (
	Absent Kind = iota
	String
	Number
	Other
)

// Value is a response resolved against nothing yet; the field type decides
// how it is interpreted.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Raw  interface{}
}

// Present is false for missing keys, null and the empty string. Zero is present.
func (v Value) Present() bool {
	return v.Kind != Absent
}

// Text renders the value as the form would have shown it.
func (v Value) Text() string {
	switch v.Kind {
	case String:
		return v.Str
	case Number:
		return cast.ToString(v.Num)
	case Other:
		return cast.ToString(v.Raw)
	}
	return ""
}

// ValueOf looks up fieldID in responses and classifies it.
func ValueOf(responses map[string]interface{}, fieldID string) Value {
	raw, ok := responses[fieldID]
	if !ok || raw == nil {
		return Value{Kind: Absent}
	}
	return Classify(raw)
}

// Classify tags a single raw value.
func Classify(raw interface{}) Value {
	switch x := raw.(type) {
	case nil:
		return Value{Kind: Absent}
	case string:
		if x == "" {
			return Value{Kind: Absent, Raw: raw}
		}
		return Value{Kind: String, Str: x, Raw: raw}
	case json.Number:
		if n, err := cast.ToFloat64E(string(x)); err == nil {
			return Value{Kind: Number, Num: n, Raw: raw}
		}
		return Value{Kind: String, Str: string(x), Raw: raw}
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToFloat64E(x)
		if err != nil {
			return Value{Kind: Other, Raw: raw}
		}
		return Value{Kind: Number, Num: n, Raw: raw}
	}
	return Value{Kind: Other, Raw: raw}
}

// AsNumber parses the value as a base-10 number: optional sign, digits,
// optional fraction. Surrounding whitespace in strings is ignored.
func (v Value) AsNumber() (float64, bool) {
	switch v.Kind {
	case Number:
		return v.Num, true
	case String:
		s := strings.TrimSpace(v.Str)
		if !numberPattern.MatchString(s) {
			return 0, false
		}
		n, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
