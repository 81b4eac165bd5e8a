package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Template ---
type Template struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Fields      []Field            `bson:"fields" json:"fields"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateTemplateRequest คือ body ของ POST /templates
type CreateTemplateRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields" validate:"required,min=1,dive"`
}

// UpdateTemplateRequest is a partial update; nil members keep the stored value.
type UpdateTemplateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Fields      *[]Field `json:"fields,omitempty"`
}

// MoveFieldRequest ระบุทิศทางการเลื่อน field
type MoveFieldRequest struct {
	Direction string `json:"direction" query:"direction" validate:"required,oneof=up down"`
}

// FieldIndex returns the position of the field with the given id, or -1.
func (t *Template) FieldIndex(fieldID string) int {
	for i := range t.Fields {
		if t.Fields[i].ID == fieldID {
			return i
		}
	}
	return -1
}

// AppendField adds f at the end of the field list.
func (t *Template) AppendField(f Field) {
	t.Fields = append(t.Fields, f)
	t.renumber()
}

// RemoveField drops the field with the given id. It reports false when no such field exists.
func (t *Template) RemoveField(fieldID string) bool {
	i := t.FieldIndex(fieldID)
	if i < 0 {
		return false
	}
	t.Fields = append(t.Fields[:i], t.Fields[i+1:]...)
	t.renumber()
	return true
}

// MoveFieldUp swaps the field with its predecessor. Moving the first field is a no-op.
func (t *Template) MoveFieldUp(fieldID string) bool {
	i := t.FieldIndex(fieldID)
	if i < 0 {
		return false
	}
	if i > 0 {
		t.Fields[i-1], t.Fields[i] = t.Fields[i], t.Fields[i-1]
		t.renumber()
	}
	return true
}

// MoveFieldDown swaps the field with its successor. Moving the last field is a no-op.
func (t *Template) MoveFieldDown(fieldID string) bool {
	i := t.FieldIndex(fieldID)
	if i < 0 {
		return false
	}
	if i < len(t.Fields)-1 {
		t.Fields[i+1], t.Fields[i] = t.Fields[i], t.Fields[i+1]
		t.renumber()
	}
	return true
}

// order เป็นข้อมูลประกอบเท่านั้น ลำดับใน slice คือของจริง
func (t *Template) renumber() {
	for i := range t.Fields {
		t.Fields[i].Order = i + 1
	}
}

// Renumber syncs every field's Order with its slice position.
func (t *Template) Renumber() {
	t.renumber()
}

// Touch refreshes UpdatedAt.
func (t *Template) Touch(now time.Time) {
	t.UpdatedAt = now
}
