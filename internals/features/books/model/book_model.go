// internals/features/books/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type BookModel struct {
	// PK
	BookID uuid.UUID `json:"id" gorm:"column:book_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Metadata
	BookTitle       string  `json:"title"                 gorm:"column:book_title;type:varchar(255);not null"`
	BookAuthor      string  `json:"author"                gorm:"column:book_author;type:varchar(255);not null;index:idx_books_author"`
	BookPublisher   string  `json:"publisher"             gorm:"column:book_publisher;type:varchar(255);not null"`
	BookDescription *string `json:"description,omitempty" gorm:"column:book_description;type:text"`
	BookCoverImage  *string `json:"coverImage,omitempty"  gorm:"column:book_cover_image;type:text"`
	BookCategory    *string `json:"category,omitempty"    gorm:"column:book_category;type:varchar(120);index:idx_books_category"`

	BookTags          pq.StringArray  `json:"tags"                    gorm:"column:book_tags;type:text[]"`
	BookPublishedDate *datatypes.Date `json:"publishedDate,omitempty" gorm:"column:book_published_date;type:date"`

	// Rating agregat (average dirender bersarang lewat DTO)
	BookRatingAverage float64 `json:"-" gorm:"column:book_rating_average;not null;default:0"`
	BookRatingCount   int     `json:"-" gorm:"column:book_rating_count;not null;default:0"`

	// Stok. Invariant: 0 <= book_qty <= book_initial_qty, dijaga juga oleh CHECK
	// dan oleh predicate pada update borrow/return.
	BookInitialQty int `json:"initialQty" gorm:"column:book_initial_qty;not null;check:chk_books_initial_qty,book_initial_qty >= 0"`
	BookQty        int `json:"qty"        gorm:"column:book_qty;not null;check:chk_books_qty_bounds,book_qty >= 0 AND book_qty <= book_initial_qty"`

	// Timestamps
	BookCreatedAt time.Time `json:"createdAt" gorm:"column:book_created_at;type:timestamptz;not null;autoCreateTime;index:idx_books_created_at,sort:desc"`
	BookUpdatedAt time.Time `json:"updatedAt" gorm:"column:book_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (BookModel) TableName() string { return "books" }

// QtyWithinBounds melaporkan apakah stok masih memenuhi invariant,
// padanan in-process dari predicate update kondisional di store.
func (m *BookModel) QtyWithinBounds() bool {
	return m.BookQty >= 0 && m.BookQty <= m.BookInitialQty
}
