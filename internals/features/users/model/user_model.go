// internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID       uuid.UUID `json:"id"       gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName     string    `json:"username" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail    string    `json:"email"    gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	UserPassword string    `json:"-"        gorm:"column:user_password;type:varchar(255);not null"` // bcrypt hash

	UserCreatedAt time.Time `json:"createdAt" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time `json:"updatedAt" gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
