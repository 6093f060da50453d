//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"tutorlink/internal/handler/dto/request"
	"tutorlink/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

// SignupAndLogin registers a user through the API and returns its access token.
// Signup grants the signup bonus, so the returned account starts with points.
func SignupAndLogin(t *testing.T, router *gin.Engine, email, displayName, role string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/signup",
		request.SignupRequest{
			Email:       email,
			Password:    testPassword,
			DisplayName: displayName,
			Role:        role,
		}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return LoginUser(t, router, email, testPassword)
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, cookie, "Access token not found in cookies")
	require.NotEmpty(t, cookie.Value)

	return cookie.Value
}
