package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/course-enroll/internal/apperror"
	"github.com/learnhub/course-enroll/internal/middleware"
	"github.com/learnhub/course-enroll/internal/model/request"
	"github.com/learnhub/course-enroll/internal/model/response"
	"github.com/learnhub/course-enroll/internal/service"
)

type CourseHandler struct {
	courses *service.CourseService
}

func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// CreateCourse godoc
//
//	@Summary	Create a new course
//	@Tags		Courses
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		request.CreateCourseRequest	true	"course fields"
//	@Success	201		{object}	response.CourseData
//	@Failure	400		{object}	response.ValidationErrors
//	@Router		/courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	body := c.MustGet("validatedBody").(request.CreateCourseRequest)

	course, appErr := h.courses.CreateCourse(c.Request.Context(), body)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, response.CourseData{
		Message: "Course created successfully",
		Course:  *course,
	})
}

// ListCourses godoc
//
//	@Summary	Get all courses
//	@Tags		Courses
//	@Produce	json
//	@Success	200	{object}	response.Courses
//	@Router		/courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, appErr := h.courses.ListCourses(c.Request.Context())
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.Courses{
		Message: "Courses fetched successfully",
		Courses: courses,
	})
}

// ListAppliedCourses godoc
//
//	@Summary	Get the courses the logged-in user applied for
//	@Tags		Courses
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.Courses
//	@Failure	404	{object}	response.Message
//	@Router		/courses/applied [get]
func (h *CourseHandler) ListAppliedCourses(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		respondError(c, apperror.New(apperror.KindUnauthorized, "No token, authorization denied"))
		return
	}

	courses, appErr := h.courses.ListAppliedCourses(c.Request.Context(), caller.ID)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.Courses{
		Message: "Applied courses fetched successfully",
		Courses: courses,
	})
}
