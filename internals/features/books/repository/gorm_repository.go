// internals/features/books/repository/gorm_repository.go
package repository

import (
	"context"
	"errors"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) BookRepository {
	return &gormBookRepository{db: db}
}

func (r *gormBookRepository) List(ctx context.Context, p ListParams) ([]model.BookModel, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.BookModel{})

	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("book_title ILIKE ? OR book_author ILIKE ?", like, like)
	}
	if p.Category != "" {
		q = q.Where("book_category = ?", p.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []model.BookModel
	if err := q.
		Order("book_created_at DESC").
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *gormBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BookModel, error) {
	var m model.BookModel
	if err := r.db.WithContext(ctx).First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *gormBookRepository) Create(ctx context.Context, m *model.BookModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update menulis hanya kolom yang ada di patch. Save tidak dipakai di sini:
// Save menulis semua kolom termasuk book_qty, sehingga borrow yang commit di
// antara read dan write akan tertimpa nilai lama. Saat patch menyentuh stok,
// invariant masuk ke predicate supaya check dan write satu statement.
func (r *gormBookRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*model.BookModel, error) {
	if len(patch) == 0 {
		return r.GetByID(ctx, id)
	}

	qty, hasQty := patch["book_qty"].(int)
	init, hasInit := patch["book_initial_qty"].(int)
	if hasQty && hasInit && qty > init {
		return nil, ErrStockBounds
	}

	var m model.BookModel
	q := r.db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("book_id = ?", id)
	switch {
	case hasQty && !hasInit:
		q = q.Where("book_initial_qty >= ?", qty)
	case hasInit && !hasQty:
		q = q.Where("book_qty <= ?", init)
	}

	res := q.Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.classifyMiss(ctx, id, ErrStockBounds)
	}
	return &m, nil
}

func (r *gormBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Hard delete: katalog tidak memakai tombstone
	res := r.db.WithContext(ctx).Delete(&model.BookModel{}, "book_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormBookRepository) Search(ctx context.Context, query string) ([]model.BookModel, error) {
	like := "%" + query + "%"
	var books []model.BookModel
	err := r.db.WithContext(ctx).
		Where("book_title ILIKE ? OR book_author ILIKE ? OR book_description ILIKE ?", like, like, like).
		Order("book_created_at DESC").
		Find(&books).Error
	return books, err
}

func (r *gormBookRepository) ListByCategory(ctx context.Context, category string) ([]model.BookModel, error) {
	var books []model.BookModel
	err := r.db.WithContext(ctx).
		Where("book_category = ?", category).
		Order("book_created_at DESC").
		Find(&books).Error
	return books, err
}

// Borrow = satu UPDATE kondisional atomik. Check-then-mutate tidak boleh
// dipisah jadi read + write: dua borrow paralel pada qty==1 bisa sama-sama
// lolos. Predicate book_qty > 0 berjalan di dalam statement yang sama.
func (r *gormBookRepository) Borrow(ctx context.Context, id uuid.UUID) (*model.BookModel, error) {
	var m model.BookModel
	res := r.db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("book_id = ? AND book_qty > 0", id).
		Update("book_qty", gorm.Expr("book_qty - 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.classifyMiss(ctx, id, ErrOutOfStock)
	}
	return &m, nil
}

// Return simetris dengan Borrow: predicate book_qty < book_initial_qty
// menjaga stok tidak pernah melebihi jumlah copy yang dimiliki.
func (r *gormBookRepository) Return(ctx context.Context, id uuid.UUID) (*model.BookModel, error) {
	var m model.BookModel
	res := r.db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("book_id = ? AND book_qty < book_initial_qty", id).
		Update("book_qty", gorm.Expr("book_qty + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.classifyMiss(ctx, id, ErrOverReturn)
	}
	return &m, nil
}

// classifyMiss membedakan "id tidak ada" dari "predicate gagal" setelah
// update kondisional tidak match. Read di sini hanya untuk klasifikasi
// error, bukan bagian dari mutasi.
func (r *gormBookRepository) classifyMiss(ctx context.Context, id uuid.UUID, boundErr error) error {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("book_id = ?", id).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return ErrNotFound
	}
	return boundErr
}
