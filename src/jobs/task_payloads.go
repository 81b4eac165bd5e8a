package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TypeSubmissionReceipt sends the submitter a copy of what they sent.
const TypeSubmissionReceipt = "email:submission-receipt"

type SubmissionReceiptPayload struct {
	SubmissionID   string          `json:"submissionId"`
	TemplateID     string          `json:"templateId"`
	TemplateTitle  string          `json:"templateTitle"`
	SubmitterEmail string          `json:"submitterEmail"`
	SubmittedAt    time.Time       `json:"submittedAt"`
	Answers        []ReceiptAnswer `json:"answers"`
}

// ReceiptAnswer is one label/value line of the receipt, in field order.
type ReceiptAnswer struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func NewSubmissionReceiptTask(p SubmissionReceiptPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSubmissionReceipt, b), nil
}
