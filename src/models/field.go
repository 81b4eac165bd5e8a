package models

// FieldType คือชนิดของคำถามในฟอร์ม (closed enum)
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
)

// FieldTypes lists every supported type in declaration order.
var FieldTypes = []FieldType{FieldText, FieldNumber, FieldDate, FieldSelect, FieldTextarea, FieldEmail}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// --- Field ---
type Field struct {
	ID          string    `bson:"id" json:"id"`
	Label       string    `bson:"label" json:"label" validate:"required"`
	Type        FieldType `bson:"type" json:"type" validate:"required,oneof=text number date select textarea email"`
	Required    bool      `bson:"required" json:"required"`
	Placeholder string    `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options     []string  `bson:"options,omitempty" json:"options,omitempty"`
	Min         *float64  `bson:"min,omitempty" json:"min,omitempty"`
	Max         *float64  `bson:"max,omitempty" json:"max,omitempty"`
	Order       int       `bson:"order" json:"order"`
}

// HasOptions reports whether the field carries a choice list.
func (f Field) HasOptions() bool {
	return f.Type == FieldSelect
}

// HasBounds reports whether min/max apply to the field.
func (f Field) HasBounds() bool {
	return f.Type == FieldNumber
}
