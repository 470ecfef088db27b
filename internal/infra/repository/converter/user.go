package converter

import (
	"cowork-booking/internal/domain/user"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s has an invalid name", row.ID)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s has an invalid email", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s has an invalid role", row.ID)
	}
	return user.ReconstructUser(row.ID, name, email, row.PasswordHash, role, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
