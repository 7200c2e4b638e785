package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/internal/token"
)

func setupGatedEngine(t *testing.T, tokens *token.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/private", RequireAuth(tokens), func(c *gin.Context) {
		caller, ok := CallerIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": caller.ID})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["message"]
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	r := setupGatedEngine(t, tokens)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", messageOf(t, w))
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	r := setupGatedEngine(t, tokens)

	for _, header := range []string{"Basic abc", "bearer lowercase", "Bearertoken"} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "No token, authorization denied", messageOf(t, w), "header %q", header)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	r := setupGatedEngine(t, tokens)

	w := doRequest(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", messageOf(t, w))
}

func TestRequireAuthExpiredToken(t *testing.T) {
	issuer := token.NewService([]byte("test-secret"), -time.Hour)
	signed, err := issuer.Issue(model.Identity{ID: "u1", Name: "n", Email: "e@example.com"})
	require.NoError(t, err)

	tokens := token.NewService([]byte("test-secret"), time.Hour)
	r := setupGatedEngine(t, tokens)

	w := doRequest(r, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", messageOf(t, w))
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	signed, err := tokens.Issue(model.Identity{ID: "u1", Name: "n", Email: "e@example.com"})
	require.NoError(t, err)

	r := setupGatedEngine(t, tokens)

	w := doRequest(r, "Bearer "+signed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
}
