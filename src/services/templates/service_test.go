package templates

import (
	"context"
	"testing"

	"Backend-FormBuilder/src/models"
	"Backend-FormBuilder/src/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(repository.NewMemoryStore())
}

func validRequest() *models.CreateTemplateRequest {
	return &models.CreateTemplateRequest{
		Title:       "  Survey  ",
		Description: "Quarterly feedback",
		Fields: []models.Field{
			{ID: "f1", Label: "Email", Type: models.FieldEmail, Required: true},
			{ID: "f2", Label: "Team", Type: models.FieldSelect, Options: []string{" Red ", "", "   ", "Blue"}},
		},
	}
}

func requireValidationKeys(t *testing.T, err error, keys ...string) *models.ValidationError {
	t.Helper()
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	for _, k := range keys {
		assert.Contains(t, ve.FieldMap(), k)
	}
	return ve
}

func TestCreateTemplateNormalizes(t *testing.T) {
	svc := newTestService()

	tmpl, err := svc.CreateTemplate(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Survey", tmpl.Title)
	assert.False(t, tmpl.ID.IsZero())
	assert.False(t, tmpl.CreatedAt.IsZero())
	assert.Equal(t, []string{"Red", "Blue"}, tmpl.Fields[1].Options)
	assert.Equal(t, 1, tmpl.Fields[0].Order)
	assert.Equal(t, 2, tmpl.Fields[1].Order)
}

func TestCreateTemplateRejectsEmptyFields(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.Fields = nil
	_, err := svc.CreateTemplate(context.Background(), req)
	ve := requireValidationKeys(t, err, "fields")
	assert.Equal(t, "At least one field is required", ve.Message)
}

func TestCreateTemplateRejectsBlankTitle(t *testing.T) {
	svc := newTestService()

	for _, title := range []string{"", "   ", "\t\n"} {
		req := validRequest()
		req.Title = title
		_, err := svc.CreateTemplate(context.Background(), req)
		ve := requireValidationKeys(t, err, "title")
		assert.Equal(t, "Title is required", ve.Message)
	}
}

func TestCreateTemplateFieldRules(t *testing.T) {
	svc := newTestService()
	min, max := 10.0, 1.0

	req := &models.CreateTemplateRequest{
		Title: "Bad",
		Fields: []models.Field{
			{ID: "dup", Label: "One", Type: models.FieldText},
			{ID: "dup", Label: "Two", Type: models.FieldText},
			{ID: "kind", Label: "Kind", Type: "checkbox"},
			{ID: "pick", Label: "Pick", Type: models.FieldSelect, Options: []string{" ", ""}},
			{ID: "range", Label: "Range", Type: models.FieldNumber, Min: &min, Max: &max},
			{ID: "nolabel", Label: "  ", Type: models.FieldText},
		},
	}
	_, err := svc.CreateTemplate(context.Background(), req)
	ve := requireValidationKeys(t, err, "dup", "kind", "pick", "range", "nolabel")
	assert.Equal(t, `Duplicate field id "dup"`, ve.Message)
	assert.Equal(t, "Pick needs at least one option", ve.FieldMap()["pick"])
	assert.Equal(t, "Range min must not exceed max", ve.FieldMap()["range"])
}

func TestCreateTemplateClearsInapplicableAttributes(t *testing.T) {
	svc := newTestService()
	min := 1.0

	tmpl, err := svc.CreateTemplate(context.Background(), &models.CreateTemplateRequest{
		Title: "Cleanup",
		Fields: []models.Field{
			{ID: "t", Label: "Text", Type: models.FieldText, Options: []string{"x"}, Min: &min},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, tmpl.Fields[0].Options)
	assert.Nil(t, tmpl.Fields[0].Min)
}

func TestCreateTemplateAssignsFieldIDs(t *testing.T) {
	svc := newTestService()

	tmpl, err := svc.CreateTemplate(context.Background(), &models.CreateTemplateRequest{
		Title: "Ids",
		Fields: []models.Field{
			{Label: "A", Type: models.FieldText},
			{Label: "B", Type: models.FieldText},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^field_[0-9a-f]{32}$`, tmpl.Fields[0].ID)
	assert.NotEqual(t, tmpl.Fields[0].ID, tmpl.Fields[1].ID)
}

func TestUpdateTemplatePatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tmpl, err := svc.CreateTemplate(ctx, validRequest())
	require.NoError(t, err)

	title := "Renamed"
	updated, err := svc.UpdateTemplate(ctx, tmpl.ID.Hex(), &models.UpdateTemplateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Quarterly feedback", updated.Description)
	assert.Len(t, updated.Fields, 2)
	assert.Equal(t, tmpl.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(tmpl.UpdatedAt))

	empty := []models.Field{}
	_, err = svc.UpdateTemplate(ctx, tmpl.ID.Hex(), &models.UpdateTemplateRequest{Fields: &empty})
	requireValidationKeys(t, err, "fields")

	blank := " "
	_, err = svc.UpdateTemplate(ctx, tmpl.ID.Hex(), &models.UpdateTemplateRequest{Title: &blank})
	requireValidationKeys(t, err, "title")

	_, err = svc.UpdateTemplate(ctx, "missing", &models.UpdateTemplateRequest{Title: &title})
	assert.ErrorIs(t, err, models.ErrTemplateNotFound)
}

func TestFieldEditing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tmpl, err := svc.CreateTemplate(ctx, validRequest())
	require.NoError(t, err)
	id := tmpl.ID.Hex()

	tmpl, err = svc.AppendField(ctx, id, models.Field{ID: "f3", Label: "Age", Type: models.FieldNumber})
	require.NoError(t, err)
	require.Len(t, tmpl.Fields, 3)
	assert.Equal(t, 3, tmpl.Fields[2].Order)

	_, err = svc.AppendField(ctx, id, models.Field{ID: "f3", Label: "Again", Type: models.FieldText})
	requireValidationKeys(t, err, "f3")

	tmpl, err = svc.MoveField(ctx, id, "f3", "up")
	require.NoError(t, err)
	assert.Equal(t, "f3", tmpl.Fields[1].ID)

	tmpl, err = svc.MoveField(ctx, id, "f1", "down")
	require.NoError(t, err)
	assert.Equal(t, []string{"f3", "f1", "f2"}, []string{tmpl.Fields[0].ID, tmpl.Fields[1].ID, tmpl.Fields[2].ID})

	_, err = svc.MoveField(ctx, id, "f1", "sideways")
	requireValidationKeys(t, err, "direction")

	_, err = svc.MoveField(ctx, id, "nope", "up")
	assert.ErrorIs(t, err, models.ErrFieldNotFound)

	tmpl, err = svc.RemoveField(ctx, id, "f1")
	require.NoError(t, err)
	assert.Len(t, tmpl.Fields, 2)

	_, err = svc.RemoveField(ctx, id, "f1")
	assert.ErrorIs(t, err, models.ErrFieldNotFound)

	_, err = svc.RemoveField(ctx, id, "f3")
	require.NoError(t, err)
	_, err = svc.RemoveField(ctx, id, "f2")
	requireValidationKeys(t, err, "fields")
}

func TestListAndDeleteTemplates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.CreateTemplate(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.CreateTemplate(ctx, validRequest())
	require.NoError(t, err)

	list, total, err := svc.GetTemplates(ctx, models.DefaultPagination())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, list, 2)

	require.NoError(t, svc.DeleteTemplate(ctx, first.ID.Hex()))
	_, err = svc.GetTemplate(ctx, first.ID.Hex())
	assert.ErrorIs(t, err, models.ErrTemplateNotFound)
	assert.ErrorIs(t, svc.DeleteTemplate(ctx, first.ID.Hex()), models.ErrTemplateNotFound)
}
