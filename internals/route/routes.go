// internals/route/routes.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/configs"
	bookRepository "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/repository"
	bookRoute "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/route"
	userRepository "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/repository"
	userRoute "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	bookRepo := bookRepository.NewGormBookRepository(db)
	userRepo := userRepository.NewGormUserRepository(db)
	SetupRoutesWithRepos(app, bookRepo, userRepo)
}

// SetupRoutesWithRepos menerima repository langsung; dipakai test dan dev
// mode tanpa Postgres.
func SetupRoutesWithRepos(app *fiber.App, bookRepo bookRepository.BookRepository, userRepo userRepository.UserRepository) {
	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "May the success be with you!",
			"data":    fiber.Map{"date": time.Now().Format(time.RFC1123)},
		})
	})

	// cover image yang tersimpan dilayani statis
	app.Static("/uploads", configs.UploadDir)

	api := app.Group("/api")

	log.Println("[INFO] Setting up BookRoutes...")
	bookRoute.BookRoutes(api.Group("/books"), bookRepo, configs.UploadDir)

	log.Println("[INFO] Setting up MechanismRoutes...")
	bookRoute.MechanismRoutes(api.Group("/mechanism"), bookRepo)

	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(api.Group("/auth"), userRepo)
}
