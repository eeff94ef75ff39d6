// internals/features/users/repository/gorm_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, m *model.UserModel) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "uq_users_email") ||
			strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).First(&m, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
