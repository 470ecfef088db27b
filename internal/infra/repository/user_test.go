//go:build unit

package repository

import (
	"context"
	"testing"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
		},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"users_email_key\""},
			wantKind:  infra.KindDuplicateKey,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateUserParams) bool {
				return arg.ID == u.ID() && arg.Email == "test@example.com" && arg.Role == "client"
			})).Return(sqlc.Users{}, tt.mockError)

			repo := NewUserRepository(mockQueries)

			err = repo.Create(context.Background(), mockQueries, u)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByEmail(t *testing.T) {
	row := builder.NewUserBuilder().AsAdmin().BuildInfra()
	email, err := user.NewEmail(row.Email)
	require.NoError(t, err)

	tests := []struct {
		name       string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			mockReturn: row,
		},
		{
			name:      "user not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, row.Email).Return(tt.mockReturn, tt.mockError)

			got, err := NewUserRepository(mockQueries).FindByEmail(context.Background(), mockQueries, email)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, got.ID())
				assert.Equal(t, user.RoleAdmin, got.Role())
				assert.Equal(t, row.PasswordHash, got.PasswordHash())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
