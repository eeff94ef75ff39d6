// internals/features/books/repository/memory_repository.go
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// memoryBookRepository menyimpan katalog di memori dengan satu mutex.
// Semantik conditional update-nya sama persis dengan implementasi gorm;
// dipakai untuk test dan mode dev tanpa Postgres.
type memoryBookRepository struct {
	mu    sync.Mutex
	books map[uuid.UUID]*memoryBook
	seq   int64
}

type memoryBook struct {
	model.BookModel
	seq int64 // urutan insert, untuk sort stabil saat created_at sama persis
}

func NewMemoryBookRepository() BookRepository {
	return &memoryBookRepository{books: make(map[uuid.UUID]*memoryBook)}
}

func cloneBook(b *memoryBook) *model.BookModel {
	m := b.BookModel
	if b.BookTags != nil {
		m.BookTags = append(m.BookTags[:0:0], b.BookTags...)
	}
	return &m
}

func (r *memoryBookRepository) sortedDesc() []*memoryBook {
	out := make([]*memoryBook, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq > out[j].seq })
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (b *memoryBook) matchesSearch(q string) bool {
	if containsFold(b.BookTitle, q) || containsFold(b.BookAuthor, q) {
		return true
	}
	return false
}

func (r *memoryBookRepository) List(_ context.Context, p ListParams) ([]model.BookModel, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*memoryBook
	for _, b := range r.sortedDesc() {
		if p.Search != "" && !b.matchesSearch(p.Search) {
			continue
		}
		if p.Category != "" && (b.BookCategory == nil || *b.BookCategory != p.Category) {
			continue
		}
		matched = append(matched, b)
	}

	total := int64(len(matched))
	offset := (p.Page - 1) * p.Limit
	if offset >= len(matched) {
		return []model.BookModel{}, total, nil
	}
	end := offset + p.Limit
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]model.BookModel, 0, end-offset)
	for _, b := range matched[offset:end] {
		out = append(out, *cloneBook(b))
	}
	return out, total, nil
}

func (r *memoryBookRepository) GetByID(_ context.Context, id uuid.UUID) (*model.BookModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneBook(b), nil
}

func (r *memoryBookRepository) Create(_ context.Context, m *model.BookModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.BookID == uuid.Nil {
		m.BookID = uuid.New()
	}
	now := time.Now()
	m.BookCreatedAt = now
	m.BookUpdatedAt = now

	r.seq++
	b := &memoryBook{BookModel: *m, seq: r.seq}
	if m.BookTags != nil {
		b.BookTags = append(m.BookTags[:0:0], m.BookTags...)
	}
	r.books[m.BookID] = b
	return nil
}

// Update menerapkan patch kolom-level dalam satu critical section, semantik
// sama dengan Updates kondisional di implementasi gorm: kolom di luar patch
// (termasuk stok) tidak tersentuh, dan hasil merge yang keluar dari
// 0..initialQty ditolak sebelum ada yang tertulis.
func (r *memoryBookRepository) Update(_ context.Context, id uuid.UUID, patch map[string]any) (*model.BookModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	if len(patch) == 0 {
		return cloneBook(b), nil
	}

	cp := b.BookModel
	for col, v := range patch {
		switch col {
		case "book_title":
			cp.BookTitle = v.(string)
		case "book_author":
			cp.BookAuthor = v.(string)
		case "book_publisher":
			cp.BookPublisher = v.(string)
		case "book_description":
			s := v.(string)
			cp.BookDescription = &s
		case "book_cover_image":
			s := v.(string)
			cp.BookCoverImage = &s
		case "book_category":
			s := v.(string)
			cp.BookCategory = &s
		case "book_tags":
			tags := v.(pq.StringArray)
			cp.BookTags = append(tags[:0:0], tags...)
		case "book_published_date":
			d := v.(datatypes.Date)
			cp.BookPublishedDate = &d
		case "book_initial_qty":
			cp.BookInitialQty = v.(int)
		case "book_qty":
			cp.BookQty = v.(int)
		}
	}
	if !cp.QtyWithinBounds() {
		return nil, ErrStockBounds
	}

	cp.BookUpdatedAt = time.Now()
	b.BookModel = cp
	return cloneBook(b), nil
}

func (r *memoryBookRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *memoryBookRepository) Search(_ context.Context, query string) ([]model.BookModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.BookModel
	for _, b := range r.sortedDesc() {
		desc := ""
		if b.BookDescription != nil {
			desc = *b.BookDescription
		}
		if b.matchesSearch(query) || containsFold(desc, query) {
			out = append(out, *cloneBook(b))
		}
	}
	if out == nil {
		out = []model.BookModel{}
	}
	return out, nil
}

func (r *memoryBookRepository) ListByCategory(_ context.Context, category string) ([]model.BookModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.BookModel{}
	for _, b := range r.sortedDesc() {
		if b.BookCategory != nil && *b.BookCategory == category {
			out = append(out, *cloneBook(b))
		}
	}
	return out, nil
}

// Borrow: check + mutate dalam satu critical section, padanan langsung dari
// UPDATE ... WHERE book_qty > 0 pada implementasi gorm.
func (r *memoryBookRepository) Borrow(_ context.Context, id uuid.UUID) (*model.BookModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	if b.BookQty <= 0 {
		return nil, ErrOutOfStock
	}
	b.BookQty--
	b.BookUpdatedAt = time.Now()
	return cloneBook(b), nil
}

func (r *memoryBookRepository) Return(_ context.Context, id uuid.UUID) (*model.BookModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	if b.BookQty >= b.BookInitialQty {
		return nil, ErrOverReturn
	}
	b.BookQty++
	b.BookUpdatedAt = time.Now()
	return cloneBook(b), nil
}
