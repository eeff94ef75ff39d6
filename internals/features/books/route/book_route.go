package route

import (
	bookController "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/controller"
	repository "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/repository"
	"github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

// BookRoutes dipasang di /api/books.
// Endpoint baca publik; mutasi dijaga JWT.
func BookRoutes(r fiber.Router, repo repository.BookRepository, uploadDir string) {
	ctl := &bookController.BookController{Repo: repo, UploadDir: uploadDir}

	r.Get("/", ctl.List)
	r.Get("/search", ctl.Search)
	r.Get("/category/:category", ctl.ListByCategory)
	r.Get("/:id", ctl.GetByID)

	guard := auth.AuthMiddleware()
	r.Post("/", guard, ctl.Create)
	r.Put("/:id", guard, ctl.Update)
	r.Delete("/:id", guard, ctl.Delete)
}

// MechanismRoutes dipasang di /api/mechanism.
func MechanismRoutes(r fiber.Router, repo repository.BookRepository) {
	ctl := &bookController.MechanismController{Repo: repo}

	r.Post("/borrow/:id", ctl.Borrow)
	r.Post("/return/:id", ctl.Return)
}
