//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, email, role)
	require.NoError(t, err)
	return token
}
