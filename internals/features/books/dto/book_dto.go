// internals/features/books/dto/book_dto.go
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	model "github.com/HeavenlySpectre/pweb-express-mongodb-P23-2024/internals/features/books/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* =========================
   REQUEST
   ========================= */

type RatingPayload struct {
	Average float64 `json:"average" form:"-"`
	Count   int     `json:"count"   form:"-"`
}

// BookCreateRequest menerima qty & rating dari klien tapi mengabaikannya:
// qty selalu mulai dari initialQty dan rating mulai dari {0,0}.
type BookCreateRequest struct {
	Title         string         `json:"title"         form:"title"       validate:"required"`
	Author        string         `json:"author"        form:"author"      validate:"required"`
	Publisher     string         `json:"publisher"     form:"publisher"   validate:"required"`
	Description   *string        `json:"description"   form:"description"`
	CoverImage    *string        `json:"coverImage"    form:"-"`
	Category      *string        `json:"category"      form:"category"`
	Tags          []string       `json:"tags"          form:"tags"`
	PublishedDate *string        `json:"publishedDate" form:"publishedDate"`
	InitialQty    *int           `json:"initialQty"    form:"initialQty"  validate:"required,gte=0"`
	Qty           *int           `json:"qty"           form:"qty"`
	Rating        *RatingPayload `json:"rating"        form:"-"`
}

// BookUpdateRequest: allow-list field yang boleh di-merge lewat PUT.
// Rating sengaja tidak ada di sini (hanya dibentuk lewat create).
type BookUpdateRequest struct {
	Title         *string   `json:"title"         form:"title"`
	Author        *string   `json:"author"        form:"author"`
	Publisher     *string   `json:"publisher"     form:"publisher"`
	Description   *string   `json:"description"   form:"description"`
	CoverImage    *string   `json:"coverImage"    form:"-"`
	Category      *string   `json:"category"      form:"category"`
	Tags          *[]string `json:"tags"          form:"tags"`
	PublishedDate *string   `json:"publishedDate" form:"publishedDate"`
	InitialQty    *int      `json:"initialQty"    form:"initialQty" validate:"omitempty,gte=0"`
	Qty           *int      `json:"qty"           form:"qty"        validate:"omitempty,gte=0"`
}

/* =========================
   NORMALIZER
   ========================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if v := strings.TrimSpace(t); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (r *BookCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Publisher = strings.TrimSpace(r.Publisher)
	r.Description = trimPtr(r.Description)
	r.Category = trimPtr(r.Category)
	r.CoverImage = trimPtr(r.CoverImage)
	r.PublishedDate = trimPtr(r.PublishedDate)
	r.Tags = trimTags(r.Tags)
}

func (r *BookUpdateRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Author = trimPtr(r.Author)
	r.Publisher = trimPtr(r.Publisher)
	r.Description = trimPtr(r.Description)
	r.Category = trimPtr(r.Category)
	r.CoverImage = trimPtr(r.CoverImage)
	r.PublishedDate = trimPtr(r.PublishedDate)
	if r.Tags != nil {
		t := trimTags(*r.Tags)
		r.Tags = &t
	}
}

/* =========================
   MAPPER
   ========================= */

// ParseDate menerima "2006-01-02" atau RFC3339.
func ParseDate(s string) (datatypes.Date, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return datatypes.Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("publishedDate tidak valid: %q", s)
	}
	return datatypes.Date(t), nil
}

func (r *BookCreateRequest) ToModel() (*model.BookModel, error) {
	m := &model.BookModel{
		BookTitle:       r.Title,
		BookAuthor:      r.Author,
		BookPublisher:   r.Publisher,
		BookDescription: r.Description,
		BookCoverImage:  r.CoverImage,
		BookCategory:    r.Category,
		BookTags:        r.Tags,
	}
	if r.PublishedDate != nil {
		d, err := ParseDate(*r.PublishedDate)
		if err != nil {
			return nil, err
		}
		m.BookPublishedDate = &d
	}
	// qty & rating: nilai kiriman klien diabaikan
	m.BookInitialQty = *r.InitialQty
	m.BookQty = *r.InitialQty
	m.BookRatingAverage = 0
	m.BookRatingCount = 0
	return m, nil
}

// Patch membangun map kolom → nilai hanya dari field yang dikirim. Field
// yang absen tidak masuk map sama sekali, jadi UPDATE-nya tidak menyentuh
// kolom lain — penting untuk book_qty, yang bisa berubah lewat borrow/return
// di sela-sela request.
func (r *BookUpdateRequest) Patch() (map[string]any, error) {
	patch := map[string]any{}
	if r.Title != nil {
		patch["book_title"] = *r.Title
	}
	if r.Author != nil {
		patch["book_author"] = *r.Author
	}
	if r.Publisher != nil {
		patch["book_publisher"] = *r.Publisher
	}
	if r.Description != nil {
		patch["book_description"] = *r.Description
	}
	if r.CoverImage != nil {
		patch["book_cover_image"] = *r.CoverImage
	}
	if r.Category != nil {
		patch["book_category"] = *r.Category
	}
	if r.Tags != nil {
		patch["book_tags"] = pq.StringArray(*r.Tags)
	}
	if r.PublishedDate != nil {
		d, err := ParseDate(*r.PublishedDate)
		if err != nil {
			return nil, err
		}
		patch["book_published_date"] = d
	}
	if r.InitialQty != nil {
		patch["book_initial_qty"] = *r.InitialQty
	}
	if r.Qty != nil {
		patch["book_qty"] = *r.Qty
	}
	return patch, nil
}

/* =========================
   RESPONSE
   ========================= */

type RatingResponse struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type BookResponse struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Author        string         `json:"author"`
	Publisher     string         `json:"publisher"`
	Description   *string        `json:"description,omitempty"`
	CoverImage    *string        `json:"coverImage,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Tags          []string       `json:"tags"`
	PublishedDate *string        `json:"publishedDate,omitempty"`
	Rating        RatingResponse `json:"rating"`
	InitialQty    int            `json:"initialQty"`
	Qty           int            `json:"qty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func ToBookResponse(m *model.BookModel) BookResponse {
	resp := BookResponse{
		ID:          m.BookID,
		Title:       m.BookTitle,
		Author:      m.BookAuthor,
		Publisher:   m.BookPublisher,
		Description: m.BookDescription,
		CoverImage:  m.BookCoverImage,
		Category:    m.BookCategory,
		Tags:        m.BookTags,
		Rating: RatingResponse{
			Average: m.BookRatingAverage,
			Count:   m.BookRatingCount,
		},
		InitialQty: m.BookInitialQty,
		Qty:        m.BookQty,
		CreatedAt:  m.BookCreatedAt,
		UpdatedAt:  m.BookUpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if m.BookPublishedDate != nil {
		s := time.Time(*m.BookPublishedDate).Format("2006-01-02")
		resp.PublishedDate = &s
	}
	return resp
}

func ToBookResponses(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookResponse(&ms[i]))
	}
	return out
}

/* =========================
   STRICT DECODER
   ========================= */

// DecodeStrict menolak field yang tidak dikenal (body update/create harus
// sesuai allow-list, bukan merge bebas).
func DecodeStrict(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// pastikan tidak ada trailing JSON
	if dec.More() {
		return fmt.Errorf("unexpected trailing data")
	}
	return nil
}
