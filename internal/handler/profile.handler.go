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

type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile godoc
//
//	@Summary	Get the logged-in user's profile
//	@Tags		Profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.ProfileData
//	@Failure	401	{object}	response.Message
//	@Failure	404	{object}	response.Message
//	@Router		/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		respondError(c, apperror.New(apperror.KindUnauthorized, "No token, authorization denied"))
		return
	}

	profile, appErr := h.profiles.GetProfile(c.Request.Context(), caller.ID)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.ProfileData{
		Message: "Profile fetched successfully",
		Profile: *profile,
	})
}

// UpdateProfile godoc
//
//	@Summary	Update a student's profile (email cannot be changed)
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"target user id"
//	@Param		body	body		request.UpdateProfileRequest	true	"fields to update"
//	@Success	200		{object}	response.ProfileData
//	@Failure	400		{object}	response.Message
//	@Failure	404		{object}	response.Message
//	@Router		/profile/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	body := c.MustGet("validatedBody").(request.UpdateProfileRequest)
	params := c.MustGet("validatedParams").(request.ProfileIDParam)

	profile, appErr := h.profiles.UpdateProfile(c.Request.Context(), params.ID, body)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.ProfileData{
		Message: "Profile updated successfully",
		Profile: *profile,
	})
}

// ApplyToCourse godoc
//
//	@Summary	Apply for a course
//	@Tags		Profile
//	@Produce	json
//	@Security	BearerAuth
//	@Param		courseId	path		string	true	"course id"
//	@Success	200			{object}	response.Applied
//	@Failure	400			{object}	response.Message
//	@Failure	404			{object}	response.Message
//	@Router		/profile/apply/{courseId} [post]
func (h *ProfileHandler) ApplyToCourse(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		respondError(c, apperror.New(apperror.KindUnauthorized, "No token, authorization denied"))
		return
	}
	params := c.MustGet("validatedParams").(request.CourseIDParam)

	applied, appErr := h.profiles.ApplyToCourse(c.Request.Context(), caller.ID, params.CourseID)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.Applied{
		Message:        "Successfully applied for the course",
		AppliedCourses: applied,
	})
}
