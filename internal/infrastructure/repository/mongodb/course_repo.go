package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/domain/entity"
)

// CourseRepository is the MongoDB implementation of the course catalog.
type CourseRepository struct {
	collection *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{collection: db.Collection("courses")}
}

var _ contract.ICourseRepository = (*CourseRepository)(nil)

// buildSearchFilterAndSort translates CourseSearchOptions into a BSON filter
// over published courses and an optional price sort.
func buildSearchFilterAndSort(opts *contract.CourseSearchOptions) (bson.M, bson.D) {
	filter := bson.M{
		"is_published": true,
		"$or": []bson.M{
			{"course_title": primitive.Regex{Pattern: regexp.QuoteMeta(opts.Query), Options: "i"}},
			{"sub_title": primitive.Regex{Pattern: regexp.QuoteMeta(opts.Query), Options: "i"}},
		},
	}

	// Category match is exact but case-insensitive.
	if len(opts.Categories) > 0 {
		patterns := make([]primitive.Regex, 0, len(opts.Categories))
		for _, cat := range opts.Categories {
			patterns = append(patterns, primitive.Regex{
				Pattern: fmt.Sprintf("^%s$", regexp.QuoteMeta(cat)),
				Options: "i",
			})
		}
		filter["category"] = bson.M{"$in": patterns}
	}

	var sort bson.D
	switch opts.SortByPrice {
	case "lowTohigh":
		sort = bson.D{{Key: "course_price", Value: 1}}
	case "highTolow":
		sort = bson.D{{Key: "course_price", Value: -1}}
	}

	return filter, sort
}

func (r *CourseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	if course.Lectures == nil {
		course.Lectures = []string{}
	}
	if course.EnrolledStudents == nil {
		course.EnrolledStudents = []string{}
	}
	_, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *CourseRepository) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve course: %w", err)
	}
	return &course, nil
}

func (r *CourseRepository) GetCoursesByCreator(ctx context.Context, creatorID string) ([]*entity.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"creator": creatorID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve creator courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []*entity.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode creator courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) GetPublishedCourses(ctx context.Context) ([]*entity.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"is_published": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve published courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []*entity.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode published courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) SearchCourses(ctx context.Context, opts *contract.CourseSearchOptions) ([]*entity.Course, error) {
	filter, sort := buildSearchFilterAndSort(opts)

	findOpts := options.Find()
	if sort != nil {
		findOpts.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []*entity.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return courses, nil
}

// UpdateCourse applies the given field updates and returns the updated record.
func (r *CourseRepository) UpdateCourse(ctx context.Context, id string, updates map[string]interface{}) (*entity.Course, error) {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updates}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.ErrNotFound
	}

	var updated entity.Course
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to reload updated course: %w", err)
	}
	return &updated, nil
}

func (r *CourseRepository) AppendLecture(ctx context.Context, courseID, lectureID string) error {
	filter := bson.M{"_id": courseID}
	update := bson.M{
		"$push": bson.M{"lectures": lectureID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append lecture to course: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) LinkLecture(ctx context.Context, courseID, lectureID string) error {
	filter := bson.M{"_id": courseID}
	update := bson.M{
		"$addToSet": bson.M{"lectures": lectureID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to link lecture to course: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// PullLectureRef removes the lecture reference from every course listing it.
func (r *CourseRepository) PullLectureRef(ctx context.Context, lectureID string) error {
	filter := bson.M{"lectures": lectureID}
	update := bson.M{
		"$pull": bson.M{"lectures": lectureID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to pull lecture reference: %w", err)
	}
	return nil
}

func (r *CourseRepository) AddEnrolledStudent(ctx context.Context, courseID, userID string) error {
	filter := bson.M{"_id": courseID}
	update := bson.M{
		"$addToSet": bson.M{"enrolled_students": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add enrolled student: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
