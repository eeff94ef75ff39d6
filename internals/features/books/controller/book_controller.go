// internals/features/books/controller/book_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/dto"
	repository "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/repository"
	helper "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/helpers"
)

type BookController struct {
	Repo      repository.BookRepository
	UploadDir string
}

var validate = validator.New()

// parseBody: multipart/form → BodyParser; JSON → strict decode supaya field
// di luar allow-list ditolak, bukan ikut ter-merge.
func parseBody(c *fiber.Ctx, dst any) error {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if strings.HasPrefix(ct, fiber.MIMEMultipartForm) ||
		strings.HasPrefix(ct, fiber.MIMEApplicationForm) {
		return c.BodyParser(dst)
	}
	return dto.DecodeStrict(c.Body(), dst)
}

// attachCover menyimpan file "coverImage" (bila ada di form) dan mengembalikan
// path publiknya.
func (h *BookController) attachCover(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile("coverImage")
	if err != nil || fh == nil {
		return nil, nil // tidak ada upload, bukan error
	}
	path, err := helper.SaveCoverImage(fh, h.UploadDir)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// =========================================================
// LIST - GET /api/books?page=&limit=&search=&category=
// =========================================================
func (h *BookController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	books, total, err := h.Repo.List(c.UserContext(), repository.ListParams{
		Page:     paging.Page,
		Limit:    paging.Limit,
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
	})
	if err != nil {
		log.Printf("[ERROR] list books: %v", err)
		return helper.JsonServerError(c, "Error retrieving books")
	}

	return helper.JsonList(c, "Books retrieved successfully",
		dto.ToBookResponses(books),
		helper.BuildPagination(total, paging.Page, paging.Limit),
	)
}

// =========================================================
// SEARCH - GET /api/books/search?query=
// =========================================================
func (h *BookController) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Search query is required")
	}

	books, err := h.Repo.Search(c.UserContext(), query)
	if err != nil {
		log.Printf("[ERROR] search books: %v", err)
		return helper.JsonServerError(c, "Error searching books")
	}
	return helper.JsonOK(c, "Books retrieved successfully", dto.ToBookResponses(books))
}

// =========================================================
// BY CATEGORY - GET /api/books/category/:category
// =========================================================
func (h *BookController) ListByCategory(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Params("category"))

	books, err := h.Repo.ListByCategory(c.UserContext(), category)
	if err != nil {
		log.Printf("[ERROR] list by category: %v", err)
		return helper.JsonServerError(c, "Error retrieving books")
	}
	return helper.JsonOK(c, "Books retrieved successfully", dto.ToBookResponses(books))
}

// =========================================================
// DETAIL - GET /api/books/:id
// =========================================================
func (h *BookController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid book ID")
	}

	m, err := h.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonFailed(c, fiber.StatusNotFound, "Book not found")
		}
		log.Printf("[ERROR] get book: %v", err)
		return helper.JsonServerError(c, "Error retrieving book")
	}
	return helper.JsonOK(c, "Book retrieved successfully", dto.ToBookResponse(m))
}

// =========================================================
// CREATE - POST /api/books (auth)
// Body: JSON atau multipart (file "coverImage" → /uploads/...)
// =========================================================
func (h *BookController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := parseBody(c, &req); err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid request body")
	}

	cover, err := h.attachCover(c)
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, err.Error())
	}
	if cover != nil {
		req.CoverImage = cover
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.Repo.Create(c.UserContext(), m); err != nil {
		log.Printf("[ERROR] create book: %v", err)
		return helper.JsonServerError(c, "Error adding book")
	}
	return helper.JsonCreated(c, "Book added successfully", dto.ToBookResponse(m))
}

// =========================================================
// UPDATE - PUT /api/books/:id (auth)
// Merge parsial kolom-level; hanya kolom yang dikirim yang tertulis,
// dan hasil merge wajib tetap 0 <= qty <= initialQty
// =========================================================
func (h *BookController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid book ID")
	}

	var req dto.BookUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid request body")
	}

	cover, err := h.attachCover(c)
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, err.Error())
	}
	if cover != nil {
		req.CoverImage = cover
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	patch, err := req.Patch()
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, err.Error())
	}

	m, err := h.Repo.Update(c.UserContext(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return helper.JsonFailed(c, fiber.StatusNotFound, "Book not found")
		case errors.Is(err, repository.ErrStockBounds):
			return helper.JsonFailed(c, fiber.StatusBadRequest,
				"Invalid stock: qty must be between 0 and initialQty")
		default:
			log.Printf("[ERROR] update book: %v", err)
			return helper.JsonServerError(c, "Error updating book")
		}
	}
	return helper.JsonOK(c, "Book updated successfully", dto.ToBookResponse(m))
}

// =========================================================
// DELETE - DELETE /api/books/:id (auth, hard delete)
// =========================================================
func (h *BookController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonFailed(c, fiber.StatusBadRequest, "Invalid book ID")
	}

	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonFailed(c, fiber.StatusNotFound, "Book not found")
		}
		log.Printf("[ERROR] delete book: %v", err)
		return helper.JsonServerError(c, "Error deleting book")
	}
	return helper.JsonOK(c, "Book deleted successfully", fiber.Map{})
}
