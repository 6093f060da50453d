package commands

import (
	"context"
	"log/slog"

	domledger "tutorlink/internal/domain/ledger"
	"tutorlink/internal/domain/user"
	"tutorlink/internal/infra"
	"tutorlink/internal/pkg/errs"
	"tutorlink/internal/pkg/jwt"
	"tutorlink/internal/pkg/password"
	"tutorlink/internal/usecase/queries"
	"tutorlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidSignup        = errs.New("invalid signup request")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type SignupRequest struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

type SignupResult struct {
	UserID uuid.UUID
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow               shared.UnitOfWork
	readStore         queries.UserReadStore
	jwtService        *jwt.Service
	signupBonusPoints int64
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, signupBonusPoints int64) AuthCommands {
	return &authCommandsImpl{
		uow:               uow,
		readStore:         readStore,
		jwtService:        jwtService,
		signupBonusPoints: signupBonusPoints,
	}
}

// Signup registers the user and seeds their points account with the
// configured starting balance, all in one transaction.
func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}
	rawPassword, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}
	displayName, err := user.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}
	role, err := user.NewRole(req.Role)
	if err != nil || role == user.RoleAdmin {
		return nil, errs.Mark(user.ErrInvalidRole, ErrInvalidSignup)
	}

	hash, err := password.HashPassword(rawPassword.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hash, displayName, role)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, derr := tx.Users().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(derr, ErrAuthenticationFailed)
		}

		if derr := tx.Ledger().CreateAccount(ctx, tx.DB(), userID, a.signupBonusPoints); derr != nil {
			return errs.Mark(derr, ErrAuthenticationFailed)
		}
		if a.signupBonusPoints > 0 {
			entry, derr := domledger.NewEntry(userID, nil, domledger.KindSignupBonus, a.signupBonusPoints)
			if derr != nil {
				return errs.Mark(derr, ErrAuthenticationFailed)
			}
			if _, derr := tx.Ledger().InsertEntry(ctx, tx.DB(), entry); derr != nil {
				return errs.Mark(derr, ErrAuthenticationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SignupResult{UserID: entity.ID()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, emailVO.Value(), rawPassword)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.generateTokenPair(view.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// Login already succeeded; the timestamp is best effort.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.generateTokenPair(claims.UserID, role)
}

func (a *authCommandsImpl) generateTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, rawPassword string) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
