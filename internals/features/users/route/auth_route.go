package route

import (
	userController "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/controller"
	repository "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/repository"
	middlewares "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/middlewares"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes dipasang di /api/auth.
func AuthRoutes(r fiber.Router, repo repository.UserRepository) {
	ctl := &userController.AuthController{Repo: repo}

	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
