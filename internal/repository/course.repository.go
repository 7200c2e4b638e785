package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/learnhub/course-enroll/internal/constant"
	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/pkg/database"
)

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *database.MongoDB) *CourseRepository {
	return &CourseRepository{coll: db.Collection(constant.CoursesCollection)}
}

func (r *CourseRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Course, error) {
	var course model.Course
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Insert(ctx context.Context, course *model.Course) (bson.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, errors.New("unexpected inserted id type")
	}
	return id, nil
}

// FindAll returns every course document, unfiltered and unpaginated.
func (r *CourseRepository) FindAll(ctx context.Context) ([]model.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []model.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByIDs resolves course references to full documents, preserving the
// order of ids. References to since-removed courses are skipped.
func (r *CourseRepository) FindByIDs(
	ctx context.Context,
	ids []bson.ObjectID,
) ([]model.Course, error) {
	if len(ids) == 0 {
		return []model.Course{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var found []model.Course
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[bson.ObjectID]model.Course, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	courses := []model.Course{}
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}
