package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/learnhub/course-enroll/internal/apperror"
	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/internal/model/request"
)

func TestCreateCourse(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses, newFakeUserStore())

	course, appErr := svc.CreateCourse(context.Background(), request.CreateCourseRequest{
		CourseName:  "Analytical Engines 101",
		Description: "Punch cards and loops",
		Brief:       "intro",
		Amount:      49.99,
	})
	require.Nil(t, appErr)
	assert.False(t, course.ID.IsZero())
	assert.Equal(t, "Analytical Engines 101", course.CourseName)
	assert.Equal(t, 49.99, course.Amount)

	stored, err := courses.FindByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.CourseName, stored.CourseName)
}

func TestListCoursesReturnsAll(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses, newFakeUserStore())

	const n = 5
	for i := 0; i < n; i++ {
		_, appErr := svc.CreateCourse(context.Background(), request.CreateCourseRequest{
			CourseName:  fmt.Sprintf("Course %d", i),
			Description: "desc",
			Brief:       "brief",
			Amount:      float64(i + 1),
		})
		require.Nil(t, appErr)
	}

	listed, appErr := svc.ListCourses(context.Background())
	require.Nil(t, appErr)
	assert.Len(t, listed, n)
}

func TestListCoursesEmpty(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), newFakeUserStore())

	listed, appErr := svc.ListCourses(context.Background())
	require.Nil(t, appErr)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestListAppliedCoursesExpandsReferences(t *testing.T) {
	users := newFakeUserStore()
	courses := newFakeCourseStore()
	svc := NewCourseService(courses, users)

	first := seedCourse(courses, "First")
	second := seedCourse(courses, "Second")
	seedCourse(courses, "Unapplied")

	userID := seedUser(users, model.User{
		Name:           "Ada",
		Email:          "ada@example.com",
		Password:       "hash",
		AppliedCourses: []bson.ObjectID{second, first},
	})

	applied, appErr := svc.ListAppliedCourses(context.Background(), userID.Hex())
	require.Nil(t, appErr)
	require.Len(t, applied, 2)
	// Expansion follows the reference list's order, not the catalog's.
	assert.Equal(t, "Second", applied[0].CourseName)
	assert.Equal(t, "First", applied[1].CourseName)
}

func TestListAppliedCoursesUnknownUser(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), newFakeUserStore())

	_, appErr := svc.ListAppliedCourses(context.Background(), bson.NewObjectID().Hex())
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestListAppliedCoursesNoneApplied(t *testing.T) {
	users := newFakeUserStore()
	svc := NewCourseService(newFakeCourseStore(), users)

	userID := seedUser(users, model.User{Name: "Ada", Email: "ada@example.com", Password: "hash"})

	applied, appErr := svc.ListAppliedCourses(context.Background(), userID.Hex())
	require.Nil(t, appErr)
	assert.NotNil(t, applied)
	assert.Empty(t, applied)
}
