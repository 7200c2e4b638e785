package validation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/course-enroll/internal/model/request"
	"github.com/learnhub/course-enroll/internal/model/response"
)

func setupRegisterEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Validate[request.RegisterRequest, any](), func(c *gin.Context) {
		body := c.MustGet("validatedBody").(request.RegisterRequest)
		c.JSON(http.StatusOK, gin.H{"email": body.Email})
	})
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) response.ValidationErrors {
	t.Helper()
	var body response.ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestValidateAcceptsValidBody(t *testing.T) {
	r := setupRegisterEngine()

	w := postJSON(r, "/register", `{"name":"Ada","email":"ada@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestValidateReportsFieldErrors(t *testing.T) {
	r := setupRegisterEngine()

	w := postJSON(r, "/register", `{"email":"not-an-email","password":"abc"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeErrors(t, w)
	require.Len(t, body.Errors, 3)

	byField := map[string]string{}
	for _, fe := range body.Errors {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "Name is required", byField["name"])
	assert.Equal(t, "Enter a valid email", byField["email"])
	assert.Equal(t, "Password must be at least 6 characters", byField["password"])
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	r := setupRegisterEngine()

	w := postJSON(r, "/register", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeErrors(t, w)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Invalid request payload", body.Errors[0].Message)
}

func TestValidateBindsURIParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/apply/:courseId", Validate[any, request.CourseIDParam](), func(c *gin.Context) {
		params := c.MustGet("validatedParams").(request.CourseIDParam)
		c.JSON(http.StatusOK, gin.H{"courseId": params.CourseID})
	})

	w := postJSON(r, "/apply/abc123", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc123")
}
