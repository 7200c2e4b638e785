package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/learnhub/course-enroll/internal/model/request"
	"github.com/learnhub/course-enroll/internal/validation"
)

// RegisterRoutes wires the route groups under pathPrefix. The gate is the
// bearer-token middleware; routes registered without it are public.
func RegisterRoutes(
	r *gin.Engine,
	pathPrefix string,
	gate gin.HandlerFunc,
	auth *AuthHandler,
	profile *ProfileHandler,
	course *CourseHandler,
) {
	authGroup := r.Group(pathPrefix + "/auth")
	{
		authGroup.POST("/register", validation.Validate[request.RegisterRequest, any](), auth.Register)
		authGroup.POST("/login", validation.Validate[request.LoginRequest, any](), auth.Login)
	}

	profileGroup := r.Group(pathPrefix+"/profile", gate)
	{
		profileGroup.GET("", profile.GetProfile)
		profileGroup.PUT("/:id",
			validation.Validate[request.UpdateProfileRequest, request.ProfileIDParam](),
			profile.UpdateProfile)
		profileGroup.POST("/apply/:courseId",
			validation.Validate[any, request.CourseIDParam](),
			profile.ApplyToCourse)
	}

	courseGroup := r.Group(pathPrefix + "/courses")
	{
		courseGroup.GET("", course.ListCourses)
		courseGroup.POST("", gate,
			validation.Validate[request.CreateCourseRequest, any](),
			course.CreateCourse)
		courseGroup.GET("/applied", gate, course.ListAppliedCourses)
	}
}
