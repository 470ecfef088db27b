package usecase

import (
	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/jwt"
	"cowork-booking/internal/usecase/shared"
)

var ErrInvalidToken = errs.NewKind("invalid or expired token", errs.ErrUnauthenticated)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrInvalidToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, ErrInvalidToken)
	}

	return shared.Actor{UserID: claims.UserID, Role: role}, nil
}
