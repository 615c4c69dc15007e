package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestFindAnakByNIK(t *testing.T) {
	db, mock := newMockDB(t)

	anakID := uuid.New()
	rows := sqlmock.NewRows([]string{"anak_id", "anak_nik", "anak_nama", "anak_jenis_kelamin"}).
		AddRow(anakID.String(), "3579021201200001", "Siti Rahma", "P")
	mock.ExpectQuery(`SELECT \* FROM "anak" WHERE anak_nik = `).WillReturnRows(rows)

	anak, err := FindAnakByNIK(db, " 3579021201200001 ")
	require.NoError(t, err)
	assert.Equal(t, anakID, anak.AnakID)
	assert.Equal(t, "Siti Rahma", anak.AnakNama)

	// resolve ulang dengan NIK yang sama → identitas internal yang sama
	mock.ExpectQuery(`SELECT \* FROM "anak" WHERE anak_nik = `).
		WillReturnRows(sqlmock.NewRows([]string{"anak_id", "anak_nik"}).
			AddRow(anakID.String(), "3579021201200001"))
	again, err := FindAnakByNIK(db, "3579021201200001")
	require.NoError(t, err)
	assert.Equal(t, anak.AnakID, again.AnakID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAnakByNIKNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "anak" WHERE anak_nik = `).
		WillReturnRows(sqlmock.NewRows([]string{"anak_id"}))

	anak, err := FindAnakByNIK(db, "0000000000000000")
	assert.Nil(t, anak)
	// lookup tidak pernah membuat anak: not found dilaporkan apa adanya
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNIKTakenExcludesOwnRow(t *testing.T) {
	db, mock := newMockDB(t)

	ownID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "anak" WHERE anak_nik = .+ AND anak_id <> `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := NIKTaken(db, "3579021201200001", ownID)
	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNIKTakenConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "anak" WHERE anak_nik = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := NIKTaken(db, "3579021201200001", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
