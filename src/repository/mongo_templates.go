package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"Backend-FormBuilder/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on two collections of one database.
type MongoStore struct {
	templates   *mongo.Collection
	submissions *mongo.Collection
	now         func() time.Time
}

// NewMongoStore uses the "templates" and "submissions" collections of db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		templates:   db.Collection("templates"),
		submissions: db.Collection("submissions"),
		now:         time.Now,
	}
}

// EnsureIndexes creates the indexes backing the two list queries.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.templates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create templates index: %w", err)
	}
	_, err = s.submissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "templateId", Value: 1}, {Key: "submittedAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create submissions index: %w", err)
	}
	return nil
}

func (s *MongoStore) CreateTemplate(ctx context.Context, t *models.Template) (*models.Template, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.templates.InsertOne(ctx, t); err != nil {
		return nil, models.Unexpected("insert template", err)
	}
	return t, nil
}

func (s *MongoStore) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrTemplateNotFound
	}

	var t models.Template
	err = s.templates.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrTemplateNotFound
		}
		return nil, models.Unexpected("find template", err)
	}
	return &t, nil
}

func (s *MongoStore) ListTemplates(ctx context.Context, params models.PaginationParams) ([]models.Template, int64, error) {
	params.Normalize()

	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(params.Search), Options: "i"}
	}

	total, err := s.templates.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, models.Unexpected("count templates", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if params.Limit > 0 {
		opts.SetSkip(params.GetSkip()).SetLimit(int64(params.Limit))
	}

	cursor, err := s.templates.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, models.Unexpected("find templates", err)
	}
	defer cursor.Close(ctx)

	templates := []models.Template{}
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, 0, models.Unexpected("decode templates", err)
	}
	return templates, total, nil
}

func (s *MongoStore) UpdateTemplate(ctx context.Context, id string, t *models.Template) (*models.Template, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrTemplateNotFound
	}

	t.Touch(s.now().UTC().Truncate(time.Millisecond))
	update := bson.M{"$set": bson.M{
		"title":       t.Title,
		"description": t.Description,
		"fields":      t.Fields,
		"updatedAt":   t.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Template
	err = s.templates.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrTemplateNotFound
		}
		return nil, models.Unexpected("update template", err)
	}
	return &updated, nil
}

// DeleteTemplate leaves submissions of the template in place.
func (s *MongoStore) DeleteTemplate(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrTemplateNotFound
	}

	res, err := s.templates.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.Unexpected("delete template", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrTemplateNotFound
	}
	return nil
}
