package repository

import (
	"context"
	"sync"
	"testing"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(t *testing.T, repo BookRepository, title string, initialQty int) *model.BookModel {
	t.Helper()
	m := &model.BookModel{
		BookTitle:      title,
		BookAuthor:     "Author",
		BookPublisher:  "Publisher",
		BookInitialQty: initialQty,
		BookQty:        initialQty,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestBorrowDecrementsUntilOutOfStock(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Sapiens", 2)

	m, err := repo.Borrow(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.BookQty)

	m, err = repo.Borrow(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 0, m.BookQty)

	_, err = repo.Borrow(ctx, b.BookID)
	assert.ErrorIs(t, err, ErrOutOfStock)

	// qty tetap 0, tidak pernah negatif
	cur, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 0, cur.BookQty)

	m, err = repo.Return(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.BookQty)
}

func TestReturnNeverExceedsInitialQty(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Dune", 3)

	_, err := repo.Return(ctx, b.BookID)
	assert.ErrorIs(t, err, ErrOverReturn)

	cur, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 3, cur.BookQty)
}

func TestBorrowUnknownIDIsNotFound(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	_, err := repo.Borrow(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Return(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

// Dua borrow paralel pada satu copy terakhir: tepat satu sukses, satu
// OutOfStock, qty akhir 0 — tidak pernah -1, tidak pernah dua sukses.
func TestConcurrentBorrowSingleCopy(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Last Copy", 1)

	const callers = 2
	results := make([]error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			_, results[i] = repo.Borrow(ctx, b.BookID)
		}(i)
	}
	wg.Wait()

	var success, outOfStock int
	for _, err := range results {
		switch {
		case err == nil:
			success++
		case err == ErrOutOfStock:
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, outOfStock)

	cur, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 0, cur.BookQty)
}

// Banyak borrow/return acak tidak pernah menembus batas invariant.
func TestConcurrentBorrowReturnKeepsInvariant(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Hammered", 5)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.Borrow(ctx, b.BookID)
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.Return(ctx, b.BookID)
		}()
	}
	wg.Wait()

	cur, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cur.BookQty, 0)
	assert.LessOrEqual(t, cur.BookQty, cur.BookInitialQty)
}

func TestGetIsIdempotent(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Idempotent", 4)

	first, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListPaginatesNewestFirst(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		newBook(t, repo, "Book", 1)
	}

	books, total, err := repo.List(ctx, ListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Len(t, books, 5)

	// halaman di luar jangkauan → kosong, total tetap
	books, total, err = repo.List(ctx, ListParams{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Empty(t, books)
}

func TestListFiltersSearchAndCategory(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	fantasy := "fantasy"
	m := &model.BookModel{
		BookTitle:      "The Hobbit",
		BookAuthor:     "Tolkien",
		BookPublisher:  "Allen & Unwin",
		BookCategory:   &fantasy,
		BookInitialQty: 1,
		BookQty:        1,
	}
	require.NoError(t, repo.Create(ctx, m))
	newBook(t, repo, "Clean Code", 1)

	books, total, err := repo.List(ctx, ListParams{Page: 1, Limit: 10, Search: "hobbit"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, "The Hobbit", books[0].BookTitle)

	// search juga kena di author, case-insensitive
	books, _, err = repo.List(ctx, ListParams{Page: 1, Limit: 10, Search: "TOLKIEN"})
	require.NoError(t, err)
	assert.Len(t, books, 1)

	books, _, err = repo.List(ctx, ListParams{Page: 1, Limit: 10, Category: "fantasy"})
	require.NoError(t, err)
	assert.Len(t, books, 1)

	books, _, err = repo.List(ctx, ListParams{Page: 1, Limit: 10, Category: "Fantasy"})
	require.NoError(t, err)
	assert.Empty(t, books, "category filter exact-match")
}

func TestSearchIncludesDescription(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	desc := "A mysterious island adventure"
	m := &model.BookModel{
		BookTitle:       "Untitled",
		BookAuthor:      "Anon",
		BookPublisher:   "P",
		BookDescription: &desc,
		BookInitialQty:  1,
		BookQty:         1,
	}
	require.NoError(t, repo.Create(ctx, m))

	books, err := repo.Search(ctx, "island")
	require.NoError(t, err)
	assert.Len(t, books, 1)

	books, err = repo.Search(ctx, "volcano")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Ephemeral", 1)

	require.NoError(t, repo.Delete(ctx, b.BookID))
	_, err := repo.GetByID(ctx, b.BookID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.BookID), ErrNotFound)
}

func TestUpdateKeepsStockFromInterleavedBorrow(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Dune", 2)

	// Editor membuka buku (read), lalu borrow commit duluan
	_, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	borrowed, err := repo.Borrow(ctx, b.BookID)
	require.NoError(t, err)
	require.Equal(t, 1, borrowed.BookQty)

	// PUT metadata-saja yang menyusul tidak boleh mengembalikan qty ke 2
	m, err := repo.Update(ctx, b.BookID, map[string]any{"book_title": "Dune Messiah"})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", m.BookTitle)
	assert.Equal(t, 1, m.BookQty)

	m, err = repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.BookQty)
}

func TestUpdateRejectsStockOutOfBounds(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Bounded", 3)

	_, err := repo.Update(ctx, b.BookID, map[string]any{"book_qty": 4})
	assert.ErrorIs(t, err, ErrStockBounds)

	_, err = repo.Update(ctx, b.BookID, map[string]any{"book_initial_qty": 2})
	assert.ErrorIs(t, err, ErrStockBounds)

	_, err = repo.Update(ctx, b.BookID, map[string]any{"book_initial_qty": 2, "book_qty": 3})
	assert.ErrorIs(t, err, ErrStockBounds)

	// patch yang gagal tidak boleh menulis sebagian
	m, err := repo.GetByID(ctx, b.BookID)
	require.NoError(t, err)
	assert.Equal(t, 3, m.BookQty)
	assert.Equal(t, 3, m.BookInitialQty)

	// keduanya dikirim dan konsisten → sah
	m, err = repo.Update(ctx, b.BookID, map[string]any{"book_initial_qty": 5, "book_qty": 5})
	require.NoError(t, err)
	assert.Equal(t, 5, m.BookQty)
	assert.Equal(t, 5, m.BookInitialQty)
}

func TestUpdateAfterDeleteIsNotFound(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Gone", 1)

	require.NoError(t, repo.Delete(ctx, b.BookID))

	// buku yang terhapus tidak boleh hidup lagi lewat update
	_, err := repo.Update(ctx, b.BookID, map[string]any{"book_title": "Back?"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByID(ctx, b.BookID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()
	b := newBook(t, repo, "Same", 2)

	m, err := repo.Update(ctx, b.BookID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Same", m.BookTitle)
	assert.Equal(t, 2, m.BookQty)
}
