package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/domain/entity"
)

// LectureRepository is the MongoDB implementation of the lecture store.
type LectureRepository struct {
	collection *mongo.Collection
}

func NewLectureRepository(db *mongo.Database) *LectureRepository {
	return &LectureRepository{collection: db.Collection("lectures")}
}

var _ contract.ILectureRepository = (*LectureRepository)(nil)

func (r *LectureRepository) CreateLecture(ctx context.Context, lecture *entity.Lecture) error {
	lecture.CreatedAt = time.Now()
	lecture.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, lecture)
	if err != nil {
		return fmt.Errorf("failed to create lecture: %w", err)
	}
	return nil
}

func (r *LectureRepository) GetLectureByID(ctx context.Context, id string) (*entity.Lecture, error) {
	var lecture entity.Lecture
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lecture)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve lecture: %w", err)
	}
	return &lecture, nil
}

// GetLecturesByIDs returns lectures in the order of ids. Missing IDs are
// skipped: a dangling reference must not break the listing.
func (r *LectureRepository) GetLecturesByIDs(ctx context.Context, ids []string) ([]*entity.Lecture, error) {
	if len(ids) == 0 {
		return []*entity.Lecture{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lectures: %w", err)
	}
	defer cursor.Close(ctx)

	var fetched []*entity.Lecture
	if err := cursor.All(ctx, &fetched); err != nil {
		return nil, fmt.Errorf("failed to decode lectures: %w", err)
	}

	byID := make(map[string]*entity.Lecture, len(fetched))
	for _, l := range fetched {
		byID[l.ID] = l
	}
	ordered := make([]*entity.Lecture, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			ordered = append(ordered, l)
		}
	}
	return ordered, nil
}

func (r *LectureRepository) UpdateLecture(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update lecture: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteLecture removes the record and returns it so the caller can clean up
// the remote video asset.
func (r *LectureRepository) DeleteLecture(ctx context.Context, id string) (*entity.Lecture, error) {
	var lecture entity.Lecture
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&lecture)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete lecture: %w", err)
	}
	return &lecture, nil
}
