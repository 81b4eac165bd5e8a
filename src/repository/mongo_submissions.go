package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-FormBuilder/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *MongoStore) CreateSubmission(ctx context.Context, sub *models.Submission) (*models.Submission, error) {
	sub.ID = primitive.NewObjectID()
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = s.now().UTC()
	}
	sub.SubmittedAt = sub.SubmittedAt.Truncate(time.Millisecond)
	if sub.Responses == nil {
		sub.Responses = map[string]interface{}{}
	}

	res, err := s.submissions.InsertOne(ctx, sub)
	if err != nil {
		return nil, models.Unexpected("insert submission", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}

	log.Printf("[submission] inserted id=%s template=%s responses=%d",
		sub.ID.Hex(), sub.TemplateID.Hex(), len(sub.Responses))
	return sub, nil
}

func (s *MongoStore) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrSubmissionNotFound
	}

	var sub models.Submission
	err = s.submissions.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrSubmissionNotFound
		}
		return nil, models.Unexpected("find submission", err)
	}
	return &sub, nil
}

// ListSubmissionsByTemplate returns an empty list for an unknown or malformed template id.
func (s *MongoStore) ListSubmissionsByTemplate(ctx context.Context, templateID string) ([]models.Submission, error) {
	submissions := []models.Submission{}

	oid, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return submissions, nil
	}

	// ค่าเริ่มต้น: ใหม่สุดก่อน
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := s.submissions.Find(ctx, bson.M{"templateId": oid}, opts)
	if err != nil {
		return nil, models.Unexpected("find submissions", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, models.Unexpected("decode submissions", err)
	}
	return submissions, nil
}

func (s *MongoStore) CountSubmissionsByTemplate(ctx context.Context, templateID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return 0, nil
	}
	n, err := s.submissions.CountDocuments(ctx, bson.M{"templateId": oid})
	if err != nil {
		return 0, models.Unexpected("count submissions", err)
	}
	return n, nil
}
