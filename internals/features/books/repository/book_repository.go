// internals/features/books/repository/book_repository.go
package repository

import (
	"context"
	"errors"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/model"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("book not found")
	ErrOutOfStock  = errors.New("book out of stock")
	ErrOverReturn  = errors.New("all copies already returned")
	ErrStockBounds = errors.New("stock outside bounds")
)

type ListParams struct {
	Page     int
	Limit    int
	Search   string // substring case-insensitive di title/author
	Category string // exact match
}

// BookRepository memisahkan katalog + mekanisme stok dari store konkret.
// Borrow/Return wajib diimplementasikan sebagai satu conditional update
// atomik (predicate di store), bukan read-then-write; kalau predicate tidak
// match, kembalikan ErrOutOfStock/ErrOverReturn (atau ErrNotFound bila id
// tidak ada). Update hanya menulis kolom yang ada di patch — kolom stok
// yang tidak dikirim tidak boleh ikut tertulis, supaya borrow/return yang
// commit di sela-sela PUT metadata tidak tertimpa. Patch yang membuat stok
// keluar dari 0..initialQty ditolak dengan ErrStockBounds. Counter-only:
// tidak ada keterkaitan peminjam — kalau nanti butuh loan ledger, tambahkan
// di belakang interface ini.
type BookRepository interface {
	List(ctx context.Context, p ListParams) ([]model.BookModel, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookModel, error)
	Create(ctx context.Context, m *model.BookModel) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.BookModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string) ([]model.BookModel, error)
	ListByCategory(ctx context.Context, category string) ([]model.BookModel, error)

	Borrow(ctx context.Context, id uuid.UUID) (*model.BookModel, error)
	Return(ctx context.Context, id uuid.UUID) (*model.BookModel, error)
}
