package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is never updated once stored.
type Submission struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	TemplateID     primitive.ObjectID     `bson:"templateId" json:"templateId"`
	Responses      map[string]interface{} `bson:"responses" json:"responses"`
	SubmittedAt    time.Time              `bson:"submittedAt" json:"submittedAt"`
	SubmitterEmail string                 `bson:"submitterEmail,omitempty" json:"submitterEmail,omitempty"`
}

// SubmitFormRequest คือ body ของ POST /submissions
type SubmitFormRequest struct {
	TemplateID     string                 `json:"templateId" validate:"required"`
	Responses      map[string]interface{} `json:"responses"`
	SubmitterEmail string                 `json:"submitterEmail,omitempty" validate:"omitempty,formemail"`
}

// ValidateResponsesRequest is the body of the form-filling pre-check.
type ValidateResponsesRequest struct {
	Responses map[string]interface{} `json:"responses"`
}

// ValidationResult ผลการตรวจคำตอบโดยไม่บันทึก
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// SubmissionCount is the body of GET /submissions/template/:templateId/count.
type SubmissionCount struct {
	TemplateID string `json:"templateId"`
	Count      int64  `json:"count"`
}
