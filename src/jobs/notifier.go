package jobs

import (
	"context"
	"fmt"
	"log"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/validation"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReceiptNotifier enqueues a receipt e-mail for every submission that
// carries a submitter e-mail.
type ReceiptNotifier struct {
	client Enqueuer
}

func NewReceiptNotifier(client Enqueuer) *ReceiptNotifier {
	return &ReceiptNotifier{client: client}
}

func (n *ReceiptNotifier) SubmissionCreated(ctx context.Context, sub *models.Submission, tmpl *models.Template) error {
	if sub.SubmitterEmail == "" {
		return nil
	}

	task, err := NewSubmissionReceiptTask(BuildReceipt(sub, tmpl))
	if err != nil {
		return fmt.Errorf("build receipt task: %w", err)
	}

	// task id ผูกกับ submission เพื่อไม่ให้ส่งซ้ำ
	_, err = n.client.EnqueueContext(ctx, task,
		asynq.TaskID("submission-receipt-"+sub.ID.Hex()),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return fmt.Errorf("enqueue receipt: %w", err)
	}
	log.Printf("📨 receipt queued submission=%s to=%s", sub.ID.Hex(), sub.SubmitterEmail)
	return nil
}

// BuildReceipt renders the answers in template field order. Responses for
// fields no longer on the template are left out.
func BuildReceipt(sub *models.Submission, tmpl *models.Template) SubmissionReceiptPayload {
	p := SubmissionReceiptPayload{
		SubmissionID:   sub.ID.Hex(),
		TemplateID:     sub.TemplateID.Hex(),
		SubmitterEmail: sub.SubmitterEmail,
		SubmittedAt:    sub.SubmittedAt,
	}
	if tmpl == nil {
		return p
	}
	p.TemplateTitle = tmpl.Title
	for _, f := range tmpl.Fields {
		value := "-"
		if v := validation.ValueOf(sub.Responses, f.ID); v.Present() {
			value = v.Text()
		}
		p.Answers = append(p.Answers, ReceiptAnswer{Label: f.Label, Value: value})
	}
	return p
}
