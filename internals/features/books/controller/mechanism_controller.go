// internals/features/books/controller/mechanism_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/dto"
	repository "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/repository"
	helper "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/helpers"
)

// MechanismController: transisi stok borrow/return. Seluruh keamanan
// concurrent ada di repository (satu conditional update per transisi);
// controller hanya memetakan hasilnya ke envelope.
type MechanismController struct {
	Repo repository.BookRepository
}

// POST /api/mechanism/borrow/:id
func (h *MechanismController) Borrow(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid book ID")
	}

	m, err := h.Repo.Borrow(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return helper.JsonFailed(c, fiber.StatusNotFound, "Book not found")
		case errors.Is(err, repository.ErrOutOfStock):
			return helper.JsonFailed(c, fiber.StatusBadRequest, "Book is out of stock")
		default:
			log.Printf("[ERROR] borrow book: %v", err)
			return helper.JsonServerError(c, "Error borrowing book")
		}
	}
	return helper.JsonOK(c, "Book borrowed successfully", dto.ToBookResponse(m))
}

// POST /api/mechanism/return/:id
func (h *MechanismController) Return(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid book ID")
	}

	m, err := h.Repo.Return(c.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return helper.JsonFailed(c, fiber.StatusNotFound, "Book not found")
		case errors.Is(err, repository.ErrOverReturn):
			return helper.JsonFailed(c, fiber.StatusBadRequest, "All copies are already in stock")
		default:
			log.Printf("[ERROR] return book: %v", err)
			return helper.JsonServerError(c, "Error returning book")
		}
	}
	return helper.JsonOK(c, "Book returned successfully", dto.ToBookResponse(m))
}
