package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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

func newAnakApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewAnakController(db, validator.New())
	app.Delete("/anak/:id", ctl.Delete)
	return app
}

func TestDeleteAnakMenghapusLogDanPengukuranDalamSatuTransaksi(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAnakApp(db)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "log_pengukuran" WHERE log_anak_id = `).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "anak_pengukuran" WHERE pengukuran_anak_id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "anak" WHERE anak_id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/anak/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAnakTidakDitemukan(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAnakApp(db)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "log_pengukuran" WHERE log_anak_id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "anak_pengukuran" WHERE pengukuran_anak_id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "anak" WHERE anak_id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/anak/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAnakGagalDiTengahMembatalkanTransaksi(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAnakApp(db)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "log_pengukuran" WHERE log_anak_id = `).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "anak_pengukuran" WHERE pengukuran_anak_id = `).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/anak/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAnakIDTidakValid(t *testing.T) {
	db, mock := newMockDB(t)
	app := newAnakApp(db)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/anak/bukan-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
