// internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/configs"
	dto "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/dto"
	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/model"
	repository "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/repository"
	helper "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/helpers"
)

type AuthController struct {
	Repo repository.UserRepository
}

var validate = validator.New()

// =========================================================
// REGISTER - POST /api/auth/register
// =========================================================
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.JsonServerError(c, "Error registering user")
	}

	m := &model.UserModel{
		UserName:     req.Username,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
	}
	if err := h.Repo.Create(c.UserContext(), m); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return helper.JsonFailed(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("[ERROR] create user: %v", err)
		return helper.JsonServerError(c, "Error registering user")
	}

	return helper.JsonCreated(c, "User registered successfully", dto.ToUserResponse(m))
}

// =========================================================
// LOGIN - POST /api/auth/login
// =========================================================
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := h.Repo.FindByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// pesan sama dengan password salah, jangan bocorkan email terdaftar
			return helper.JsonFailed(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[ERROR] find user: %v", err)
		return helper.JsonServerError(c, "Error logging in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonFailed(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := helper.CreateAccessToken(m.UserID, configs.JWTSecret, helper.AccessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonServerError(c, "Error logging in")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(m),
	})
}
