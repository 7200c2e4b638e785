package request

// CreateCourseRequest is the body of POST /api/courses. Amount is required
// and must be non-zero, matching the mandatory-field rule for courses.
type CreateCourseRequest struct {
	CourseName  string  `json:"coursename"  validate:"required"`
	Description string  `json:"description" validate:"required"`
	Brief       string  `json:"brief"       validate:"required"`
	Amount      float64 `json:"amount"      validate:"required"`
	CourseImage string  `json:"courseImage"`
}
