//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"tutorlink/internal/handler/dto/request"
	"tutorlink/internal/handler/dto/response"
	"tutorlink/internal/usecase/queries"
	"tutorlink/tests/common/dbtest"
	"tutorlink/tests/common/httptest"
	"tutorlink/tests/e2e"
	"tutorlink/tests/e2e/common/helper"

	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
	balanceURL = "/api/ledger/balance"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

// =============================================================================
// TestSignup - Registration API tests against a real database
// =============================================================================

func (s *AuthSuite) TestSignup() {
	s.Run("Normal case: signup opens an account with the bonus balance", func() {
		body := request.SignupRequest{
			Email:       "new@example.com",
			Password:    "password123",
			DisplayName: "New Student",
			Role:        "student",
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		var res response.SignupResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.NotEmpty(res.UserID)

		token := helper.LoginUser(s.T(), s.Router, body.Email, body.Password)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, balanceURL, nil, token)
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &balance)
		s.Equal(int64(s.Config.Booking.SignupBonusPoints), balance.Balance)
	})

	s.Run("Error case: a taken email is rejected with 409", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "taken@example.com", "student", 0)

		body := request.SignupRequest{
			Email:       "taken@example.com",
			Password:    "password123",
			DisplayName: "Impostor",
			Role:        "student",
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already registered")
	})
}

// =============================================================================
// TestLogin - Login and token flow tests
// =============================================================================

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: seeded users can log in and read their profile", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "seeded@example.com", "teacher", 50)

		token := helper.LoginUser(s.T(), s.Router, "seeded@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(userID, me.ID)
		s.Equal(queries.RoleTeacher, me.Role)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, balanceURL, nil, token)
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &balance)
		s.Equal(int64(50), balance.Balance)
	})

	s.Run("Error case: a wrong password is rejected with 401", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "seeded@example.com", "student", 0)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "seeded@example.com", Password: "wrong-password"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Normal case: the refresh cookie rotates the token pair", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "seeded@example.com", "student", 0)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "seeded@example.com", Password: "password123"}, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		s.Require().NotNil(refreshCookie)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "",
			map[string]string{"Cookie": "refresh_token=" + refreshCookie.Value})
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		rotated := httptest.ExtractCookie(w, "refresh_token")
		s.Require().NotNil(rotated)
		s.NotEmpty(rotated.Value)

		access := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(access)
		s.NotEmpty(access.Value)
	})
}
