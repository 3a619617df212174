package repo

import (
	"context"

	"github.com/condiments/condiments-api/internal/domain/auth/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (int64, error)

	GetUserByUsername(ctx context.Context, username string) (model.User, error)
}
