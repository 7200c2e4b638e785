// Package service holds the business operations behind the HTTP handlers.
// Every operation returns an explicit *apperror.Error; handlers translate the
// kind into a status code at the boundary.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/learnhub/course-enroll/internal/model"
)

// UserStore is the persistence surface the services need for users.
// *repository.UserRepository satisfies it; tests use fakes.
type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) (bson.ObjectID, error)
	Update(ctx context.Context, user *model.User) error
	AddAppliedCourse(ctx context.Context, userID, courseID bson.ObjectID) (bool, error)
}

// CourseStore is the persistence surface for courses.
type CourseStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Course, error)
	Insert(ctx context.Context, course *model.Course) (bson.ObjectID, error)
	FindAll(ctx context.Context) ([]model.Course, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.Course, error)
}
