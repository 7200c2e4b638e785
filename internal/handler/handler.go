// Package handler maps HTTP requests onto service operations and service
// error kinds back onto status codes. Nothing below this package knows about
// HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/course-enroll/internal/apperror"
	"github.com/learnhub/course-enroll/internal/model/response"
)

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindConflict,
		apperror.KindInvalidCredentials, apperror.KindAlreadyApplied:
		return http.StatusBadRequest
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the `{message}` body for a failed service call.
func respondError(c *gin.Context, appErr *apperror.Error) {
	c.JSON(statusFor(appErr.Kind), response.Message{Message: appErr.Message})
}
