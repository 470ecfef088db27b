package repository

import (
	"context"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/repository/converter"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create reports KindDuplicateKey when the email is already registered.
func (r *UserRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, db sqlc.DBTX, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, db, email.Value())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user", err, infra.KindDBFailure)
	}
	return u, nil
}
