package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"Backend-FormBuilder/src/config"
	"Backend-FormBuilder/src/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "x"}, nil
}

type fakeSender struct {
	to, subject, body string
	err               error
}

func (f *fakeSender) Send(to, subject, html string) error {
	f.to, f.subject, f.body = to, subject, html
	return f.err
}

func sampleSubmission() (*models.Submission, *models.Template) {
	tmpl := &models.Template{
		ID:    primitive.NewObjectID(),
		Title: "Survey",
		Fields: []models.Field{
			{ID: "name", Label: "Name", Type: models.FieldText},
			{ID: "age", Label: "Age", Type: models.FieldNumber},
			{ID: "note", Label: "Note", Type: models.FieldTextarea},
		},
	}
	sub := &models.Submission{
		ID:             primitive.NewObjectID(),
		TemplateID:     tmpl.ID,
		Responses:      map[string]interface{}{"name": "<b>Ada</b>", "age": float64(36)},
		SubmittedAt:    time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC),
		SubmitterEmail: "ada@example.com",
	}
	return sub, tmpl
}

func TestBuildReceipt(t *testing.T) {
	sub, tmpl := sampleSubmission()
	p := BuildReceipt(sub, tmpl)

	assert.Equal(t, "Survey", p.TemplateTitle)
	assert.Equal(t, []ReceiptAnswer{
		{Label: "Name", Value: "<b>Ada</b>"},
		{Label: "Age", Value: "36"},
		{Label: "Note", Value: "-"},
	}, p.Answers)

	orphan := BuildReceipt(sub, nil)
	assert.Empty(t, orphan.Answers)
	assert.Equal(t, sub.ID.Hex(), orphan.SubmissionID)
}

func TestReceiptNotifierEnqueues(t *testing.T) {
	sub, tmpl := sampleSubmission()
	q := &fakeEnqueuer{}

	require.NoError(t, NewReceiptNotifier(q).SubmissionCreated(context.Background(), sub, tmpl))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeSubmissionReceipt, q.tasks[0].Type())

	var p SubmissionReceiptPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload(), &p))
	assert.Equal(t, "ada@example.com", p.SubmitterEmail)
}

func TestReceiptNotifierSkipsAnonymous(t *testing.T) {
	sub, tmpl := sampleSubmission()
	sub.SubmitterEmail = ""
	q := &fakeEnqueuer{}

	require.NoError(t, NewReceiptNotifier(q).SubmissionCreated(context.Background(), sub, tmpl))
	assert.Empty(t, q.tasks)
}

func TestReceiptNotifierReportsEnqueueError(t *testing.T) {
	sub, tmpl := sampleSubmission()
	q := &fakeEnqueuer{err: errors.New("redis down")}

	err := NewReceiptNotifier(q).SubmissionCreated(context.Background(), sub, tmpl)
	assert.ErrorContains(t, err, "redis down")
}

func TestHandleSubmissionReceipt(t *testing.T) {
	sub, tmpl := sampleSubmission()
	task, err := NewSubmissionReceiptTask(BuildReceipt(sub, tmpl))
	require.NoError(t, err)

	sender := &fakeSender{}
	require.NoError(t, HandleSubmissionReceipt(sender)(context.Background(), task))

	assert.Equal(t, "ada@example.com", sender.to)
	assert.Equal(t, "Your submission: Survey", sender.subject)
	assert.Contains(t, sender.body, "&lt;b&gt;Ada&lt;/b&gt;")
	assert.Contains(t, sender.body, "2026-04-01 08:30 UTC")
}

func TestHandleSubmissionReceiptErrors(t *testing.T) {
	bad := asynq.NewTask(TypeSubmissionReceipt, []byte("{"))
	err := HandleSubmissionReceipt(&fakeSender{})(context.Background(), bad)
	assert.ErrorIs(t, err, asynq.SkipRetry)

	sub, tmpl := sampleSubmission()
	task, err := NewSubmissionReceiptTask(BuildReceipt(sub, tmpl))
	require.NoError(t, err)
	err = HandleSubmissionReceipt(&fakeSender{err: errors.New("smtp refused")})(context.Background(), task)
	assert.ErrorContains(t, err, "smtp refused")
}

func TestSetupReceiptsNeedsSMTP(t *testing.T) {
	queue := &fakeEnqueuer{}

	notifier, worker, err := SetupReceipts("localhost:6379", config.SMTPConfig{Host: "smtp.example.com"}, queue)
	require.Error(t, err)
	assert.Nil(t, notifier)
	assert.Nil(t, worker)

	notifier, worker, err = SetupReceipts("localhost:6379", config.SMTPConfig{
		Host: "smtp.example.com",
		Port: 587,
		User: "mailer",
		Pass: "secret",
		From: "forms@example.com",
	}, queue)
	require.NoError(t, err)
	assert.NotNil(t, notifier)
	assert.NotNil(t, worker)
}
