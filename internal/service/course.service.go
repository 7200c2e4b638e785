package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/learnhub/course-enroll/internal/apperror"
	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/internal/model/request"
	"github.com/learnhub/course-enroll/internal/repository"
)

type CourseService struct {
	courses CourseStore
	users   UserStore
}

func NewCourseService(courses CourseStore, users UserStore) *CourseService {
	return &CourseService{courses: courses, users: users}
}

// CreateCourse persists a new course. Mandatory-field checks happen in the
// validation middleware before this runs; courses carry no owner.
func (s *CourseService) CreateCourse(
	ctx context.Context,
	req request.CreateCourseRequest,
) (*model.Course, *apperror.Error) {
	course := &model.Course{
		CourseName:  req.CourseName,
		Description: req.Description,
		Brief:       req.Brief,
		Amount:      req.Amount,
		CourseImage: req.CourseImage,
	}

	id, err := s.courses.Insert(ctx, course)
	if err != nil {
		zap.L().Error("Course insert failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}
	course.ID = id

	zap.L().Info("Course created",
		zap.String("courseId", id.Hex()),
		zap.String("coursename", course.CourseName))
	return course, nil
}

// ListCourses returns every course, unfiltered.
func (s *CourseService) ListCourses(ctx context.Context) ([]model.Course, *apperror.Error) {
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		zap.L().Error("Course listing failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}
	return courses, nil
}

// ListAppliedCourses expands the caller's applied-course references into full
// course documents, in application order.
func (s *CourseService) ListAppliedCourses(
	ctx context.Context,
	callerID string,
) ([]model.Course, *apperror.Error) {
	id, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.New(apperror.KindNotFound, "User not found")
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "User not found")
	}
	if err != nil {
		zap.L().Error("User lookup failed during applied listing", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	courses, err := s.courses.FindByIDs(ctx, user.AppliedCourses)
	if err != nil {
		zap.L().Error("Applied-course expansion failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}
	return courses, nil
}
