package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewApp(Deps{Templates: store, Submissions: store}, "*")
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createSurvey(t *testing.T, app *fiber.App) models.Template {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/templates", fiber.Map{
		"title": "Survey",
		"fields": []fiber.Map{
			{"id": "f1", "label": "Email", "type": "email", "required": true},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var tmpl models.Template
	decode(t, resp, &tmpl)
	return tmpl
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestSurveySubmission(t *testing.T) {
	app := newTestApp(t)
	tmpl := createSurvey(t, app)

	resp := do(t, app, http.MethodPost, "/api/submissions", fiber.Map{
		"templateId": tmpl.ID.Hex(),
		"responses":  fiber.Map{"f1": "bad"},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var bad models.ErrorResponse
	decode(t, resp, &bad)
	assert.Equal(t, "Invalid email for Email", bad.Message)
	assert.Equal(t, map[string]string{"f1": "Invalid email for Email"}, bad.Errors)

	resp = do(t, app, http.MethodPost, "/api/submissions", fiber.Map{
		"templateId": tmpl.ID.Hex(),
		"responses":  fiber.Map{"f1": "x@y.com"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var sub models.Submission
	decode(t, resp, &sub)
	assert.Equal(t, "x@y.com", sub.Responses["f1"])
	assert.Equal(t, tmpl.ID, sub.TemplateID)

	resp = do(t, app, http.MethodGet, "/api/submissions/"+sub.ID.Hex(), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/submissions/template/"+tmpl.ID.Hex(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var subs []models.Submission
	decode(t, resp, &subs)
	assert.Len(t, subs, 1)

	resp = do(t, app, http.MethodGet, "/api/submissions/template/"+tmpl.ID.Hex()+"/count", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var count models.SubmissionCount
	decode(t, resp, &count)
	assert.EqualValues(t, 1, count.Count)
}

func TestSubmitterEmailIsNormalized(t *testing.T) {
	app := newTestApp(t)
	tmpl := createSurvey(t, app)

	resp := do(t, app, http.MethodPost, "/api/submissions", fiber.Map{
		"templateId":     tmpl.ID.Hex(),
		"responses":      fiber.Map{"f1": "x@y.com"},
		"submitterEmail": "  Someone@Example.COM ",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var sub models.Submission
	decode(t, resp, &sub)
	assert.Equal(t, "someone@example.com", sub.SubmitterEmail)

	resp = do(t, app, http.MethodPost, "/api/submissions", fiber.Map{
		"templateId":     tmpl.ID.Hex(),
		"responses":      fiber.Map{"f1": "x@y.com"},
		"submitterEmail": "nobody",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmissionNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/submissions", fiber.Map{
		"templateId": primitive.NewObjectID().Hex(),
		"responses":  fiber.Map{},
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body models.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "Template not found", body.Message)

	resp = do(t, app, http.MethodGet, "/api/submissions/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/submissions", fiber.Map{"responses": fiber.Map{}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTemplateCRUD(t *testing.T) {
	app := newTestApp(t)
	tmpl := createSurvey(t, app)
	createSurvey(t, app)
	path := "/api/templates/" + tmpl.ID.Hex()

	resp := do(t, app, http.MethodGet, "/api/templates?page=1&limit=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("X-Total-Count"))
	var page []models.Template
	decode(t, resp, &page)
	assert.Len(t, page, 1)

	for _, q := range []string{"page=2&limit=9223372036854775807", "page=3&limit=4611686018427387904", "page=9223372036854775807&limit=100"} {
		resp = do(t, app, http.MethodGet, "/api/templates?"+q, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, q)
		assert.Equal(t, "2", resp.Header.Get("X-Total-Count"))
		var beyond []models.Template
		decode(t, resp, &beyond)
		assert.Empty(t, beyond, q)
	}

	resp = do(t, app, http.MethodGet, path, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPut, path, fiber.Map{"title": "Renamed"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated models.Template
	decode(t, resp, &updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Len(t, updated.Fields, 1)

	resp = do(t, app, http.MethodPut, path, fiber.Map{"fields": []fiber.Map{}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = do(t, app, http.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = do(t, app, http.MethodGet, "/api/templates/not-an-id", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateTemplateRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/templates", fiber.Map{
		"title":  "Bad",
		"fields": []fiber.Map{{"id": "f1", "label": "Pick", "type": "checkbox"}},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	decode(t, resp, &body)
	assert.Contains(t, body.Errors, "fields[0].type")

	resp = do(t, app, http.MethodPost, "/api/templates", fiber.Map{"title": "No fields"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFieldEndpoints(t *testing.T) {
	app := newTestApp(t)
	tmpl := createSurvey(t, app)
	base := "/api/templates/" + tmpl.ID.Hex() + "/fields"

	resp := do(t, app, http.MethodPost, base, fiber.Map{"id": "f2", "label": "Age", "type": "number", "min": 18})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got models.Template
	decode(t, resp, &got)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "f2", got.Fields[1].ID)

	resp = do(t, app, http.MethodPost, base+"/f2/move?direction=up", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &got)
	assert.Equal(t, "f2", got.Fields[0].ID)
	assert.Equal(t, 1, got.Fields[0].Order)

	resp = do(t, app, http.MethodPost, base+"/f2/move?direction=left", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, base+"/ghost/move?direction=up", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, base+"/f2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &got)
	assert.Len(t, got.Fields, 1)

	resp = do(t, app, http.MethodDelete, base+"/f1", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestValidateEndpoint(t *testing.T) {
	app := newTestApp(t)
	tmpl := createSurvey(t, app)
	path := "/api/templates/" + tmpl.ID.Hex() + "/validate"

	resp := do(t, app, http.MethodPost, path, fiber.Map{"responses": fiber.Map{}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var result models.ValidationResult
	decode(t, resp, &result)
	assert.False(t, result.Valid)
	assert.Equal(t, "Email is required", result.Errors["f1"])

	resp = do(t, app, http.MethodPost, path, fiber.Map{"responses": fiber.Map{"f1": "a@b.co"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result = models.ValidationResult{}
	decode(t, resp, &result)
	assert.True(t, result.Valid)

	resp = do(t, app, http.MethodPost, "/api/templates/"+primitive.NewObjectID().Hex()+"/validate", fiber.Map{})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
