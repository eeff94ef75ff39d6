package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/", Paging{Page: 1, Limit: 10, Offset: 0}},
		{"explicit", "/?page=3&limit=25", Paging{Page: 3, Limit: 25, Offset: 50}},
		{"non numeric", "/?page=abc&limit=xyz", Paging{Page: 1, Limit: 10, Offset: 0}},
		{"zero and negative", "/?page=0&limit=-5", Paging{Page: 1, Limit: 10, Offset: 0}},
		{"limit capped", "/?limit=9999", Paging{Page: 1, Limit: 100, Offset: 0}},
		{"whitespace", "/?page=%202%20&limit=%205%20", Paging{Page: 2, Limit: 5, Offset: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveFor(t, tc.target))
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(15, 2, 10)
	assert.Equal(t, Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 15, ItemsPerPage: 10}, p)

	// total pas di batas halaman
	assert.Equal(t, 2, BuildPagination(20, 1, 10).TotalPages)
	assert.Equal(t, 3, BuildPagination(21, 1, 10).TotalPages)

	// koleksi kosong
	p = BuildPagination(0, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
	assert.EqualValues(t, 0, p.TotalItems)

	// parameter rusak dinormalkan
	p = BuildPagination(5, 0, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.ItemsPerPage)
	assert.Equal(t, 1, p.TotalPages)
}
