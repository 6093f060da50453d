//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tutorlink/internal/domain/ledger"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/pkg/jwt"
	"tutorlink/internal/pkg/password"
	"tutorlink/internal/usecase/commands"
	"tutorlink/internal/usecase/queries"
	"tutorlink/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signupBonus = 100

type stubUserReadStore struct {
	view *queries.AuthorizedUserView
	hash string
}

func (s *stubUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if s.view == nil || s.view.ID != id {
		return nil, errors.New("no rows")
	}
	return s.view, nil
}

func (s *stubUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	if s.view == nil || s.view.Email != email {
		return nil, "", errors.New("no rows")
	}
	return s.view, s.hash, nil
}

func newAuthEnv(readStore queries.UserReadStore) (*fake.UnitOfWork, commands.AuthCommands) {
	f := fake.NewUnitOfWork()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 720*time.Hour)
	return f, commands.NewAuthCommands(f, readStore, jwtService, signupBonus)
}

func signupRequest() commands.SignupRequest {
	return commands.SignupRequest{
		Email:       "student@example.com",
		Password:    "password123",
		DisplayName: "Taro",
		Role:        "student",
	}
}

func TestSignup(t *testing.T) {
	t.Run("creates the user and seeds the points account", func(t *testing.T) {
		f, uc := newAuthEnv(&stubUserReadStore{})

		result, err := uc.Signup(context.Background(), signupRequest())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, int64(signupBonus), f.Balance(result.UserID))

		bonuses := f.EntriesByKind(ledger.KindSignupBonus)
		require.Len(t, bonuses, 1)
		assert.Equal(t, result.UserID, bonuses[0].UserID)
		assert.Equal(t, int64(signupBonus), bonuses[0].Amount)
		assert.Nil(t, bonuses[0].SessionID)
	})

	t.Run("zero bonus writes no ledger entry", func(t *testing.T) {
		f := fake.NewUnitOfWork()
		uc := commands.NewAuthCommands(f, &stubUserReadStore{}, jwt.NewService("test-secret", 15*time.Minute, 720*time.Hour), 0)

		result, err := uc.Signup(context.Background(), signupRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(0), f.Balance(result.UserID))
		assert.Empty(t, f.Entries())
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		f, uc := newAuthEnv(&stubUserReadStore{})
		f.SeedUser(uuid.New(), "student@example.com", "student")

		_, err := uc.Signup(context.Background(), signupRequest())
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("validation failures", func(t *testing.T) {
		_, uc := newAuthEnv(&stubUserReadStore{})

		cases := []struct {
			name   string
			mutate func(*commands.SignupRequest)
		}{
			{"malformed email", func(r *commands.SignupRequest) { r.Email = "not-an-email" }},
			{"short password", func(r *commands.SignupRequest) { r.Password = "short" }},
			{"blank display name", func(r *commands.SignupRequest) { r.DisplayName = "   " }},
			{"unknown role", func(r *commands.SignupRequest) { r.Role = "moderator" }},
			{"admin signup is closed", func(r *commands.SignupRequest) { r.Role = "admin" }},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				req := signupRequest()
				c.mutate(&req)
				_, err := uc.Signup(context.Background(), req)
				require.ErrorIs(t, err, commands.ErrInvalidSignup)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	userID := uuid.New()
	hash, err := password.HashPassword("password123")
	if err != nil {
		t.Fatal(err)
	}

	activeUser := func() *queries.AuthorizedUserView {
		return &queries.AuthorizedUserView{
			ID:          userID,
			Email:       "student@example.com",
			DisplayName: "Taro",
			Role:        "student",
			IsActive:    true,
		}
	}

	t.Run("issues a token pair", func(t *testing.T) {
		_, uc := newAuthEnv(&stubUserReadStore{view: activeUser(), hash: hash})

		result, err := uc.Login(context.Background(), "student@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, userID, result.UserID)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, uc := newAuthEnv(&stubUserReadStore{view: activeUser(), hash: hash})

		_, err := uc.Login(context.Background(), "student@example.com", "wrong-password")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like a bad password", func(t *testing.T) {
		_, uc := newAuthEnv(&stubUserReadStore{})

		_, err := uc.Login(context.Background(), "nobody@example.com", "password123")
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		view := activeUser()
		view.IsActive = false
		_, uc := newAuthEnv(&stubUserReadStore{view: view, hash: hash})

		_, err := uc.Login(context.Background(), "student@example.com", "password123")
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRefreshToken(t *testing.T) {
	userID := uuid.New()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 720*time.Hour)

	view := &queries.AuthorizedUserView{
		ID:       userID,
		Email:    "student@example.com",
		Role:     "student",
		IsActive: true,
	}

	newUC := func(store queries.UserReadStore) commands.AuthCommands {
		return commands.NewAuthCommands(fake.NewUnitOfWork(), store, jwtService, signupBonus)
	}

	t.Run("rotates the pair from a refresh token", func(t *testing.T) {
		token, err := jwtService.GenerateRefreshToken(userID, user.RoleStudent)
		require.NoError(t, err)

		pair, err := newUC(&stubUserReadStore{view: view}).RefreshToken(context.Background(), token)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("access tokens are not accepted", func(t *testing.T) {
		token, err := jwtService.GenerateAccessToken(userID, user.RoleStudent)
		require.NoError(t, err)

		_, err = newUC(&stubUserReadStore{view: view}).RefreshToken(context.Background(), token)
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("inactive user cannot refresh", func(t *testing.T) {
		token, err := jwtService.GenerateRefreshToken(userID, user.RoleStudent)
		require.NoError(t, err)

		inactive := *view
		inactive.IsActive = false
		_, err = newUC(&stubUserReadStore{view: &inactive}).RefreshToken(context.Background(), token)
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
