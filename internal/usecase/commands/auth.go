package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"
	sqlc "cowork-booking/internal/infra/sqlc/generated"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/pkg/password"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.NewKind("invalid email or password", errs.ErrUnauthenticated)
	ErrEmailTaken         = errs.NewKind("email is already registered", errs.ErrValidation)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email string, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	users    shared.UserRepository
	tokens   TokenIssuer
	hashCost int
}

func NewAuthCommands(uow shared.UnitOfWork, users shared.UserRepository, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:      uow,
		users:    users,
		tokens:   tokens,
		hashCost: password.DefaultCost,
	}
}

// Self-registration always yields a client account.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashWithCost(credentials.Password().Value(), a.hashCost)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	u := user.NewUser(name, credentials.Email(), hash, user.RoleClient)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		// Same answer as a wrong password to avoid leaking which part failed.
		return nil, ErrInvalidCredentials
	}

	var found *user.User
	err = a.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		u, err := a.users.FindByEmail(ctx, db, credentials.Email())
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(found.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(found)
}

func (a *authCommandsImpl) issue(u *user.User) (*LoginResult, error) {
	token, err := a.tokens.GenerateToken(u.ID(), u.Email().Value(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
		User: &queries.AuthorizedUserView{
			ID:        u.ID(),
			Name:      u.Name().Value(),
			Email:     u.Email().Value(),
			Role:      u.Role().String(),
			CreatedAt: u.CreatedAt(),
		},
	}, nil
}
