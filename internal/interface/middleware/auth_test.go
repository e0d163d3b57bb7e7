package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisoslab/avisos-api/pkg/helpers"
)

func newGateRouter(jwt *helpers.JWTManager, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserIDKey),
			"email":   c.GetString(CtxUserEmailKey),
		})
	})
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	calls := 0
	r := newGateRouter(jwt, &calls)

	for _, header := range []string{"", "Bearer", "Basic dXNlcjpwYXNz", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	assert.Zero(t, calls, "downstream handler must not run")
}

func TestAuth_InvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	calls := 0
	r := newGateRouter(jwt, &calls)

	other := helpers.NewJWTManager("other-secret", time.Hour)
	forged, _, err := other.Generate("user-123", "a@x.com")
	require.NoError(t, err)

	for _, token := range []string{"garbage", forged} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	}
	assert.Zero(t, calls, "downstream handler must not run")
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	calls := 0
	r := newGateRouter(jwt, &calls)

	token, _, err := jwt.Generate("user-123", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls, "downstream handler runs exactly once")
	assert.Contains(t, w.Body.String(), `"user_id":"user-123"`)
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
}
