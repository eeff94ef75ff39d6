package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateToModelForcesQtyAndRating(t *testing.T) {
	req := BookCreateRequest{
		Title:      "  Belajar Go  ",
		Author:     "Budi",
		Publisher:  "P",
		Tags:       []string{" go ", "", "backend"},
		InitialQty: intPtr(4),
		Qty:        intPtr(99),
		Rating:     &RatingPayload{Average: 5, Count: 10},
	}
	req.Normalize()
	assert.Equal(t, "Belajar Go", req.Title)
	assert.Equal(t, []string{"go", "backend"}, req.Tags)

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, 4, m.BookInitialQty)
	assert.Equal(t, 4, m.BookQty, "qty kiriman klien diabaikan")
	assert.Zero(t, m.BookRatingAverage)
	assert.Zero(t, m.BookRatingCount)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-05-17")
	require.NoError(t, err)
	assert.Equal(t, "2021-05-17", time.Time(d).Format("2006-01-02"))

	d, err = ParseDate("2021-05-17T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2021-05-17", time.Time(d).Format("2006-01-02"))

	_, err = ParseDate("17/05/2021")
	assert.Error(t, err)
}

func TestPatchContainsOnlyProvidedColumns(t *testing.T) {
	upd := BookUpdateRequest{
		Title: strPtr("Edisi Revisi"),
		Tags:  &[]string{"go"},
	}
	patch, err := upd.Patch()
	require.NoError(t, err)
	assert.Equal(t, "Edisi Revisi", patch["book_title"])
	assert.Len(t, patch, 2)

	// kolom stok tidak boleh ada di patch kalau tidak dikirim — kalau ikut,
	// UPDATE metadata bisa menimpa qty hasil borrow yang baru commit
	_, hasQty := patch["book_qty"]
	assert.False(t, hasQty)
	_, hasInit := patch["book_initial_qty"]
	assert.False(t, hasInit)

	patch, err = (&BookUpdateRequest{Qty: intPtr(1)}).Patch()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"book_qty": 1}, patch)

	// tanpa field sama sekali → patch kosong, bukan map berisi zero value
	patch, err = (&BookUpdateRequest{}).Patch()
	require.NoError(t, err)
	assert.Empty(t, patch)

	_, err = (&BookUpdateRequest{PublishedDate: strPtr("17/05/2021")}).Patch()
	assert.Error(t, err)
}

func TestDecodeStrict(t *testing.T) {
	var upd BookUpdateRequest
	require.NoError(t, DecodeStrict([]byte(`{"title":"X"}`), &upd))
	require.NotNil(t, upd.Title)
	assert.Equal(t, "X", *upd.Title)

	assert.Error(t, DecodeStrict([]byte(`{"title":"X","rating":{"average":9}}`), &upd))
	assert.Error(t, DecodeStrict([]byte(`{"title":"X"} {"more":true}`), &upd))
}

func TestBookResponseTagsNeverNil(t *testing.T) {
	req := BookCreateRequest{Title: "T", Author: "A", Publisher: "P", InitialQty: intPtr(1)}
	m, err := req.ToModel()
	require.NoError(t, err)

	resp := ToBookResponse(m)
	assert.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)
	assert.Nil(t, resp.PublishedDate)
}
