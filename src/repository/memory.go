package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"Backend-FormBuilder/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used when no MONGO_URI is configured
// and by the tests.
type MemoryStore struct {
	mu          sync.RWMutex
	seq         int64
	templates   map[primitive.ObjectID]memTemplate
	submissions map[primitive.ObjectID]memSubmission
	now         func() time.Time
}

type memTemplate struct {
	seq int64
	t   models.Template
}

type memSubmission struct {
	seq int64
	s   models.Submission
}

// NewMemoryStore returns an empty store using the wall clock.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock lets tests control timestamps.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		templates:   make(map[primitive.ObjectID]memTemplate),
		submissions: make(map[primitive.ObjectID]memSubmission),
		now:         now,
	}
}

func (m *MemoryStore) CreateTemplate(_ context.Context, t *models.Template) (*models.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now

	m.seq++
	m.templates[t.ID] = memTemplate{seq: m.seq, t: copyTemplate(*t)}
	return t, nil
}

func (m *MemoryStore) GetTemplate(_ context.Context, id string) (*models.Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrTemplateNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.templates[oid]
	if !ok {
		return nil, models.ErrTemplateNotFound
	}
	t := copyTemplate(rec.t)
	return &t, nil
}

func (m *MemoryStore) ListTemplates(_ context.Context, params models.PaginationParams) ([]models.Template, int64, error) {
	params.Normalize()
	search := strings.ToLower(params.Search)

	m.mu.RLock()
	recs := make([]memTemplate, 0, len(m.templates))
	for _, rec := range m.templates {
		if search != "" && !strings.Contains(strings.ToLower(rec.t.Title), search) {
			continue
		}
		recs = append(recs, rec)
	}
	m.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].t.CreatedAt.Equal(recs[j].t.CreatedAt) {
			return recs[i].t.CreatedAt.After(recs[j].t.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	total := int64(len(recs))
	if params.Limit > 0 {
		skip := len(recs)
		if s := params.GetSkip(); s < int64(len(recs)) {
			skip = int(s)
		}
		end := len(recs)
		if params.Limit < end-skip {
			end = skip + params.Limit
		}
		recs = recs[skip:end]
	}

	out := make([]models.Template, 0, len(recs))
	for _, rec := range recs {
		out = append(out, copyTemplate(rec.t))
	}
	return out, total, nil
}

func (m *MemoryStore) UpdateTemplate(_ context.Context, id string, t *models.Template) (*models.Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrTemplateNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.templates[oid]
	if !ok {
		return nil, models.ErrTemplateNotFound
	}
	rec.t.Title = t.Title
	rec.t.Description = t.Description
	rec.t.Fields = copyFields(t.Fields)
	rec.t.Touch(m.now().UTC())
	m.templates[oid] = rec

	updated := copyTemplate(rec.t)
	return &updated, nil
}

func (m *MemoryStore) DeleteTemplate(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrTemplateNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.templates[oid]; !ok {
		return models.ErrTemplateNotFound
	}
	delete(m.templates, oid)
	return nil
}

func (m *MemoryStore) CreateSubmission(_ context.Context, s *models.Submission) (*models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = primitive.NewObjectID()
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = m.now().UTC()
	}
	if s.Responses == nil {
		s.Responses = map[string]interface{}{}
	}

	m.seq++
	m.submissions[s.ID] = memSubmission{seq: m.seq, s: copySubmission(*s)}
	return s, nil
}

func (m *MemoryStore) GetSubmission(_ context.Context, id string) (*models.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrSubmissionNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.submissions[oid]
	if !ok {
		return nil, models.ErrSubmissionNotFound
	}
	s := copySubmission(rec.s)
	return &s, nil
}

func (m *MemoryStore) ListSubmissionsByTemplate(_ context.Context, templateID string) ([]models.Submission, error) {
	out := []models.Submission{}
	oid, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return out, nil
	}

	m.mu.RLock()
	recs := make([]memSubmission, 0)
	for _, rec := range m.submissions {
		if rec.s.TemplateID == oid {
			recs = append(recs, rec)
		}
	}
	m.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].s.SubmittedAt.Equal(recs[j].s.SubmittedAt) {
			return recs[i].s.SubmittedAt.After(recs[j].s.SubmittedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	for _, rec := range recs {
		out = append(out, copySubmission(rec.s))
	}
	return out, nil
}

func (m *MemoryStore) CountSubmissionsByTemplate(ctx context.Context, templateID string) (int64, error) {
	subs, err := m.ListSubmissionsByTemplate(ctx, templateID)
	if err != nil {
		return 0, err
	}
	return int64(len(subs)), nil
}

func copyFields(fields []models.Field) []models.Field {
	if fields == nil {
		return nil
	}
	out := make([]models.Field, len(fields))
	for i, f := range fields {
		if f.Options != nil {
			f.Options = append([]string(nil), f.Options...)
		}
		if f.Min != nil {
			v := *f.Min
			f.Min = &v
		}
		if f.Max != nil {
			v := *f.Max
			f.Max = &v
		}
		out[i] = f
	}
	return out
}

func copyTemplate(t models.Template) models.Template {
	t.Fields = copyFields(t.Fields)
	return t
}

// responses are treated as opaque; only the top-level map is copied
func copySubmission(s models.Submission) models.Submission {
	if s.Responses != nil {
		responses := make(map[string]interface{}, len(s.Responses))
		for k, v := range s.Responses {
			responses[k] = v
		}
		s.Responses = responses
	}
	return s
}
