//go:build unit || e2e

package builder

import (
	reqdto "tutorlink/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:       "student@example.com",
		Password:    "password123",
		DisplayName: "Test Student",
		Role:        "student",
	}
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:       a.Email,
		Password:    a.Password,
		DisplayName: a.DisplayName,
		Role:        a.Role,
	}
}
