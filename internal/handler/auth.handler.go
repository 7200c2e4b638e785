package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/course-enroll/internal/model/request"
	"github.com/learnhub/course-enroll/internal/model/response"
	"github.com/learnhub/course-enroll/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register godoc
//
//	@Summary	Register a new user
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.RegisterRequest	true	"registration fields"
//	@Success	200		{object}	response.Auth
//	@Failure	400		{object}	response.ValidationErrors
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	body := c.MustGet("validatedBody").(request.RegisterRequest)

	result, appErr := h.auth.Register(c.Request.Context(), body)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.Auth{
		Message: "User registered successfully",
		Payload: result.Payload,
		Token:   result.Token,
	})
}

// Login godoc
//
//	@Summary	Authenticate a user and get a token
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.LoginRequest	true	"credentials"
//	@Success	200		{object}	response.Auth
//	@Failure	400		{object}	response.Message
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	body := c.MustGet("validatedBody").(request.LoginRequest)

	result, appErr := h.auth.Login(c.Request.Context(), body)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.Auth{
		Message: "Logged in successfully",
		Payload: result.Payload,
		Token:   result.Token,
	})
}
