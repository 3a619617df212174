package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/condiments/condiments-api/internal/adapters/transport/http/dto"
	"github.com/condiments/condiments-api/internal/app/auth/password"
	"github.com/condiments/condiments-api/internal/domain/auth/jwt"
	"github.com/condiments/condiments-api/internal/domain/auth/model"
	repo "github.com/condiments/condiments-api/internal/domain/auth/repo"
	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
)

type authService struct {
	userRepo repo.UserRepo
	hasher   password.Hasher
	tokens   jwt.TokenIssuer
	v        *validator.Validate
}

// Service covers registration and login. Logout has no server-side state to
// clear, so it is not part of it: issued tokens stay valid until they expire.
type Service interface {
	Register(context.Context, dto.RegisterDTO) (model.User, error)
	Login(context.Context, dto.LoginDTO) (model.Token, error)
}

func New(
	ur repo.UserRepo,
	h password.Hasher,
	ti jwt.TokenIssuer,
	v *validator.Validate,
) Service {
	return &authService{
		userRepo: ur, hasher: h, tokens: ti, v: v,
	}
}

// Register does not look the username up first; the unique index on
// users.username decides, and a clash comes back as ErrAlreadyExists.
func (a *authService) Register(ctx context.Context, dto dto.RegisterDTO) (model.User, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := a.hasher.Hash(dto.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username:     dto.Username,
		PasswordHash: passwordHash,
	}
	id, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		if customErrors.IsInternal(err) {
			return model.User{}, err
		}
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}
	user.ID = id

	return user, nil
}

// Login answers ErrInvalidCredentials for both an unknown username and a
// wrong password.
func (a *authService) Login(ctx context.Context, dto dto.LoginDTO) (model.Token, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.Token{}, customErrors.ErrInvalidCredentials
	}

	user, err := a.userRepo.GetUserByUsername(ctx, dto.Username)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.Token{}, customErrors.ErrInvalidCredentials
	case customErrors.IsInternal(err):
		return model.Token{}, err
	case err != nil:
		return model.Token{}, customErrors.WrapInternal(err, "Login")
	}

	ok, err := a.hasher.Verify(dto.Password, user.PasswordHash)
	if err != nil {
		return model.Token{}, err
	}
	if !ok {
		return model.Token{}, customErrors.ErrInvalidCredentials
	}

	return a.tokens.Issue(user.ID)
}
