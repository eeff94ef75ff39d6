// internals/features/users/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/model"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, m *model.UserModel) error
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
}
