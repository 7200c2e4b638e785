package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/internal/repository"
)

// fakeUserStore is an in-memory UserStore mirroring the repository's error
// contract, including the atomic add-if-absent semantics of AddAppliedCourse.
type fakeUserStore struct {
	mu          sync.Mutex
	users       map[bson.ObjectID]model.User
	insertCalls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[bson.ObjectID]model.User{}}
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) Insert(_ context.Context, user *model.User) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertCalls++
	id := bson.NewObjectID()
	stored := *user
	stored.ID = id
	s.users[id] = stored
	return id, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) AddAppliedCourse(
	_ context.Context,
	userID, courseID bson.ObjectID,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return false, repository.ErrNotFound
	}
	for _, existing := range u.AppliedCourses {
		if existing == courseID {
			return false, nil
		}
	}
	u.AppliedCourses = append(u.AppliedCourses, courseID)
	s.users[userID] = u
	return true, nil
}

func (s *fakeUserStore) mustGet(id bson.ObjectID) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

// fakeCourseStore keeps courses in insertion order so FindAll is deterministic.
type fakeCourseStore struct {
	mu      sync.Mutex
	courses []model.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{}
}

func (s *fakeCourseStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeCourseStore) Insert(_ context.Context, course *model.Course) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := bson.NewObjectID()
	stored := *course
	stored.ID = id
	s.courses = append(s.courses, stored)
	return id, nil
}

func (s *fakeCourseStore) FindAll(_ context.Context) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *fakeCourseStore) FindByIDs(
	_ context.Context,
	ids []bson.ObjectID,
) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID := make(map[bson.ObjectID]model.Course, len(s.courses))
	for _, c := range s.courses {
		byID[c.ID] = c
	}
	out := []model.Course{}
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
