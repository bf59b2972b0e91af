package user

import (
	"context"

	"github.com/spicehouse/restaurant-backend/internal/types/user"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}
