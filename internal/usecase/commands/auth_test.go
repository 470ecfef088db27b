//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/jwt"
	"cowork-booking/internal/usecase/commands"
	"cowork-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingIssuer struct{}

func (failingIssuer) GenerateToken(uuid.UUID, string, user.Role) (string, error) {
	return "", errs.New("signing key unavailable")
}

func (failingIssuer) TokenDuration() time.Duration { return time.Hour }

func newAuth(t *testing.T) (commands.AuthCommands, *jwt.Service) {
	t.Helper()
	store := memstore.New()
	svc := jwt.NewService("test-secret", time.Hour, "cowork-booking")
	return commands.NewAuthCommands(store, store.Users(), svc), svc
}

func TestAuthCommands_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	auth, svc := newAuth(t)

	registered, err := auth.Register(ctx, commands.RegisterInput{
		Name: "Ada Lovelace", Email: "Ada@Example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", registered.User.Email)
	assert.Equal(t, "client", registered.User.Role)
	assert.Equal(t, time.Hour, registered.ExpiresIn)

	claims, err := svc.ValidateToken(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	loggedIn, err := auth.Login(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestAuthCommands_Register(t *testing.T) {
	tests := []struct {
		name    string
		in      commands.RegisterInput
		wantErr error
	}{
		{"invalid email", commands.RegisterInput{Name: "A", Email: "not-an-email", Password: "secret123"}, user.ErrInvalidEmail},
		{"weak password", commands.RegisterInput{Name: "A", Email: "a@example.com", Password: "123"}, user.ErrPasswordTooWeak},
		{"blank name", commands.RegisterInput{Name: " ", Email: "a@example.com", Password: "secret123"}, user.ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, _ := newAuth(t)
			_, err := auth.Register(context.Background(), tt.in)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		auth, _ := newAuth(t)
		in := commands.RegisterInput{Name: "A", Email: "a@example.com", Password: "secret123"}
		_, err := auth.Register(context.Background(), in)
		require.NoError(t, err)

		in.Email = "A@EXAMPLE.COM"
		_, err = auth.Register(context.Background(), in)
		assert.True(t, errs.Is(err, commands.ErrEmailTaken))
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)
	_, err := auth.Register(ctx, commands.RegisterInput{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "a@example.com", "wrong-password"},
		{"unknown email", "b@example.com", "secret123"},
		{"malformed email", "nope", "secret123"},
		{"short password", "a@example.com", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(ctx, tt.email, tt.password)
			assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
			assert.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))
		})
	}
}

func TestAuthCommands_TokenFailure(t *testing.T) {
	store := memstore.New()
	auth := commands.NewAuthCommands(store, store.Users(), failingIssuer{})

	_, err := auth.Register(context.Background(), commands.RegisterInput{Name: "A", Email: "a@example.com", Password: "secret123"})

	assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
}
