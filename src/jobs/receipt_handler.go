package jobs

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

//go:embed receipt_email.html
var receiptEmailHTML string

var receiptEmailTmpl = template.Must(
	template.New("receipt").
		Funcs(template.FuncMap{
			"formatTime": func(t time.Time) string {
				return t.UTC().Format("2006-01-02 15:04 MST")
			},
		}).
		Parse(receiptEmailHTML),
)

// RenderReceipt returns the subject and HTML body for a receipt.
func RenderReceipt(p SubmissionReceiptPayload) (string, string, error) {
	var buf bytes.Buffer
	if err := receiptEmailTmpl.Execute(&buf, p); err != nil {
		return "", "", err
	}
	subject := "Your submission"
	if p.TemplateTitle != "" {
		subject = fmt.Sprintf("Your submission: %s", p.TemplateTitle)
	}
	return subject, buf.String(), nil
}

// HandleSubmissionReceipt sends the receipt e-mail.
func HandleSubmissionReceipt(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SubmissionReceiptPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Println("❌ receipt payload decode error:", err)
			// payload เสีย retry ก็ไม่หาย
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.SubmitterEmail == "" {
			return nil
		}

		subject, body, err := RenderReceipt(p)
		if err != nil {
			return err
		}
		if err := sender.Send(p.SubmitterEmail, subject, body); err != nil {
			log.Printf("❌ receipt send failed submission=%s: %v", p.SubmissionID, err)
			return err
		}
		log.Printf("✅ receipt sent submission=%s to=%s", p.SubmissionID, p.SubmitterEmail)
		return nil
	}
}
