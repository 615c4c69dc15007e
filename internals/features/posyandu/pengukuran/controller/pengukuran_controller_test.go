package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return gdb, mock
}

// NIK tidak dikenal harus 404 meski body-nya tidak valid:
// resolve anak berjalan sebelum validasi payload.
func TestUpsertByNIKAnakTidakDikenalSelalu404(t *testing.T) {
	db, mock := newMockDB(t)
	ctl := NewPengukuranController(db, validator.New())
	app := fiber.New()
	app.Put("/anak-pengukuran/by-nik/:nik", ctl.UpsertByNIK)

	mock.ExpectQuery(`SELECT \* FROM "anak" WHERE anak_nik = `).
		WillReturnRows(sqlmock.NewRows([]string{"anak_id"}))

	req := httptest.NewRequest("PUT", "/anak-pengukuran/by-nik/0000000000000000",
		strings.NewReader(`{"berat": "bukan-angka"`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
