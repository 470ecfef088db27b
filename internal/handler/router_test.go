//go:build unit

package handler

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/handler/middleware"
	"cowork-booking/internal/infra/cache"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/usecase/shared"
	"cowork-booking/tests/common/httptest"
	usecasemock "cowork-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// denyingLimiter records keys and rejects every request, so no handler runs.
type denyingLimiter struct {
	mu   sync.Mutex
	keys []string
}

func (l *denyingLimiter) Take(_ context.Context, key string, _ time.Time) (cache.Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys = append(l.keys, key)
	return cache.Decision{Allowed: false, Limit: 1, RetryAfter: time.Second}, nil
}

func TestRoutes_RateLimitKeysByAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	alice := shared.Actor{UserID: uuid.New(), Role: user.RoleClient}
	bob := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken("alice-token").Return(alice, nil).AnyTimes()
	validator.EXPECT().ValidateToken("bob-token").Return(bob, nil).AnyTimes()

	limiter := &denyingLimiter{}
	cfg := config.RateLimitConfig{Enabled: true, Prefix: "rl", KeyStrategy: "user"}
	engine := gin.New()
	setupRoutes(engine, Handlers{}, middleware.NewAuthMiddleware(validator), middleware.NewRateLimiter(cfg, limiter))

	requests := []struct {
		method string
		path   string
		token  string
		want   string
	}{
		{http.MethodGet, "/api/reservations/" + uuid.NewString(), "alice-token", "rl:user:" + alice.UserID.String()},
		{http.MethodPost, "/api/reservations", "bob-token", "rl:user:" + bob.UserID.String()},
		{http.MethodGet, "/api/auth/me", "alice-token", "rl:user:" + alice.UserID.String()},
		{http.MethodDelete, "/api/rooms/" + uuid.NewString(), "bob-token", "rl:user:" + bob.UserID.String()},
		{http.MethodGet, "/api/rooms", "", "rl:user:anon"},
	}

	for _, r := range requests {
		rec := httptest.PerformRequest(t, engine, r.method, r.path, nil, r.token)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, "%s %s", r.method, r.path)
	}

	require.Len(t, limiter.keys, len(requests))
	for i, r := range requests {
		assert.Equal(t, r.want, limiter.keys[i], "%s %s", r.method, r.path)
	}
	assert.NotEqual(t, limiter.keys[0], limiter.keys[1], "two users never share a bucket")
}

func TestRoutes_UnauthenticatedProtectedRouteSkipsLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	limiter := &denyingLimiter{}
	cfg := config.RateLimitConfig{Enabled: true, Prefix: "rl", KeyStrategy: "user"}
	engine := gin.New()
	setupRoutes(engine, Handlers{}, middleware.NewAuthMiddleware(usecasemock.NewMockTokenValidator(ctrl)), middleware.NewRateLimiter(cfg, limiter))

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/reservations", nil, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, limiter.keys)
}
