package response

import "github.com/learnhub/course-enroll/internal/model"

// FieldError is one entry in a validation failure report.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 body for request validation failures.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Message is the plain `{message}` envelope used by error responses.
type Message struct {
	Message string `json:"message"`
}

// Auth is the register/login success body.
type Auth struct {
	Message string           `json:"message"`
	Payload model.JWTPayload `json:"payload"`
	Token   string           `json:"token"`
}

// Profile is the normalized profile view: every optional field collapses to
// an empty string or empty list, and the password never appears.
type Profile struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	Skills    string            `json:"skills"`
	Image     string            `json:"image"`
	Dob       string            `json:"dob"`
	Education []model.Education `json:"education"`
}

// NewProfile builds the normalized view from a stored user.
func NewProfile(u *model.User) Profile {
	education := u.Education
	if education == nil {
		education = []model.Education{}
	}
	return Profile{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Skills:    u.Skills,
		Image:     u.Image,
		Dob:       u.Dob,
		Education: education,
	}
}

// ProfileData wraps a profile fetch/update result.
type ProfileData struct {
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
}

// Applied wraps the applied-course reference list after a successful apply.
type Applied struct {
	Message        string   `json:"message"`
	AppliedCourses []string `json:"appliedCourses"`
}

// CourseData wraps a single created course.
type CourseData struct {
	Message string       `json:"message"`
	Course  model.Course `json:"course"`
}

// Courses wraps a course list.
type Courses struct {
	Message string         `json:"message"`
	Courses []model.Course `json:"courses"`
}
