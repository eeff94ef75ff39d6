// internals/features/users/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/model"

	"github.com/google/uuid"
)

/* =========================
   REQUEST
   ========================= */

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

/* =========================
   RESPONSE
   ========================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.UserID,
		Username:  m.UserName,
		Email:     m.UserEmail,
		CreatedAt: m.UserCreatedAt,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
