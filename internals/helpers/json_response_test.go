package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("default tanpa query", func(t *testing.T) {
		p := resolveFor(t, "/items", 15, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 15, p.PerPage)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("page dan per_page dihitung jadi offset", func(t *testing.T) {
		p := resolveFor(t, "/items?page=3&per_page=10", 15, 100)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 10, p.PerPage)
		assert.Equal(t, 20, p.Offset)
	})

	t.Run("limit sebagai alias per_page", func(t *testing.T) {
		p := resolveFor(t, "/items?limit=25", 15, 100)
		assert.Equal(t, 25, p.PerPage)
	})

	t.Run("per_page dibatasi maksimum", func(t *testing.T) {
		p := resolveFor(t, "/items?per_page=5000", 15, 100)
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("nilai invalid kembali ke default", func(t *testing.T) {
		p := resolveFor(t, "/items?page=abc&per_page=-4", 15, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 15, p.PerPage)
	})
}

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("halaman tengah", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 2, 10)
		assert.Equal(t, 5, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		p := BuildPaginationFromPage(45, 5, 10)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("data kosong tetap satu halaman", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 10)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(fiber.StatusUnprocessableEntity))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(502))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
