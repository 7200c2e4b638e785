package request

import "github.com/learnhub/course-enroll/internal/model"

// UpdateProfileRequest is the body of PUT /api/profile/:id. Every field is
// optional; empty incoming values never overwrite stored ones. Email is bound
// only to detect attempted changes, which are rejected. Education is a pointer
// so an absent field is distinguishable from an explicit empty list: only a
// present list replaces the stored value.
type UpdateProfileRequest struct {
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Address   string             `json:"address"`
	Skills    string             `json:"skills"`
	Image     string             `json:"image"`
	Dob       string             `json:"dob"`
	Education *[]model.Education `json:"education" validate:"omitempty,dive"`
}

// ProfileIDParam binds the :id path parameter.
type ProfileIDParam struct {
	ID string `uri:"id" validate:"required"`
}

// CourseIDParam binds the :courseId path parameter.
type CourseIDParam struct {
	CourseID string `uri:"courseId" validate:"required"`
}
