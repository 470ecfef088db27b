//go:build unit || e2e

package builder

import (
	reqdto "cowork-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
	}
}
