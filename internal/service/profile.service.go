package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/learnhub/course-enroll/internal/apperror"
	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/internal/model/request"
	"github.com/learnhub/course-enroll/internal/model/response"
	"github.com/learnhub/course-enroll/internal/repository"
)

type ProfileService struct {
	users   UserStore
	courses CourseStore
}

func NewProfileService(users UserStore, courses CourseStore) *ProfileService {
	return &ProfileService{users: users, courses: courses}
}

// GetProfile fetches the caller's own user record, password excluded, with
// every optional field normalized to an empty value.
func (s *ProfileService) GetProfile(
	ctx context.Context,
	callerID string,
) (*response.Profile, *apperror.Error) {
	id, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.New(apperror.KindNotFound, "User not found")
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "User not found")
	}
	if err != nil {
		zap.L().Error("User lookup failed during profile fetch", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	profile := response.NewProfile(user)
	return &profile, nil
}

// UpdateProfile mutates the user addressed by targetID. The target comes from
// the request path, not from the caller's token, so any authenticated user can
// update any profile; kept to match the deployed behavior of this API.
// Email can never change, and a stored field is only replaced when the
// incoming value is non-empty. Education is replaced wholesale when a list is
// present in the body, and left untouched otherwise.
func (s *ProfileService) UpdateProfile(
	ctx context.Context,
	targetID string,
	req request.UpdateProfileRequest,
) (*response.Profile, *apperror.Error) {
	id, err := bson.ObjectIDFromHex(targetID)
	if err != nil {
		return nil, apperror.New(apperror.KindNotFound, "Student not found")
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "Student not found")
	}
	if err != nil {
		zap.L().Error("User lookup failed during profile update", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	if req.Email != "" && req.Email != user.Email {
		return nil, apperror.New(apperror.KindValidation, "Email cannot be changed")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Skills != "" {
		user.Skills = req.Skills
	}
	if req.Image != "" {
		user.Image = req.Image
	}
	if req.Dob != "" {
		user.Dob = req.Dob
	}
	if req.Education != nil {
		user.Education = *req.Education
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "Student not found")
		}
		zap.L().Error("User update failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	zap.L().Info("Profile updated", zap.String("userId", targetID))
	profile := response.NewProfile(user)
	return &profile, nil
}

// ApplyToCourse records the caller's application to a course. The membership
// write is a single atomic add-if-absent, so two interleaved applications for
// the same user and course cannot both append. Returns the updated reference
// list in insertion order.
func (s *ProfileService) ApplyToCourse(
	ctx context.Context,
	callerID, courseID string,
) ([]string, *apperror.Error) {
	userID, err := bson.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.New(apperror.KindNotFound, "User not found")
	}
	cID, err := bson.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, apperror.New(apperror.KindNotFound, "Course not found")
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "User not found")
		}
		zap.L().Error("User lookup failed during apply", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	if _, err := s.courses.FindByID(ctx, cID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "Course not found")
		}
		zap.L().Error("Course lookup failed during apply", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	added, err := s.users.AddAppliedCourse(ctx, userID, cID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "User not found")
		}
		zap.L().Error("Applied-course write failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}
	if !added {
		return nil, apperror.New(apperror.KindAlreadyApplied, "You have already applied for this course")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("User re-read failed after apply", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	zap.L().Info("Course application recorded",
		zap.String("userId", callerID),
		zap.String("courseId", courseID))
	return courseRefs(user), nil
}

func courseRefs(user *model.User) []string {
	refs := make([]string, 0, len(user.AppliedCourses))
	for _, id := range user.AppliedCourses {
		refs = append(refs, id.Hex())
	}
	return refs
}
