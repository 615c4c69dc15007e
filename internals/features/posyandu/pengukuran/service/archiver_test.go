package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	"posyanduku_backend/internals/features/posyandu/pengukuran/model"
)

func TestSnapshotLogCopiesEveryMutableField(t *testing.T) {
	posyanduID := uuid.New()
	lila := 14.5
	lk := 44.0
	vitA := model.VitABiru

	anak := &anakModel.AnakModel{
		AnakID:  uuid.New(),
		AnakNIK: "3579021201200001",
	}
	existing := &model.PengukuranModel{
		PengukuranID:             uuid.New(),
		PengukuranAnakID:         anak.AnakID,
		PengukuranTanggalUkur:    time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		PengukuranPosyanduID:     &posyanduID,
		PengukuranBerat:          7.2,
		PengukuranTinggi:         66.0,
		PengukuranLila:           &lila,
		PengukuranLingkarKepala:  &lk,
		PengukuranCaraUkur:       model.CaraUkurBerdiri,
		PengukuranVitA:           &vitA,
		PengukuranAsiBulan0:      true,
		PengukuranAsiBulan2:      true,
		PengukuranAsiBulan6:      true,
		PengukuranKelasIbuBalita: true,
	}

	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	entry := SnapshotLog(anak, existing, now)

	assert.Equal(t, anak.AnakID, entry.LogAnakID)
	assert.Equal(t, anak.AnakNIK, entry.LogAnakNIK)
	assert.Equal(t, &posyanduID, entry.LogPosyanduIDLama)
	assert.Equal(t, existing.PengukuranTanggalUkur, entry.LogTanggalUkurLama)
	assert.Equal(t, 7.2, entry.LogBeratLama)
	assert.Equal(t, 66.0, entry.LogTinggiLama)
	assert.Equal(t, &lila, entry.LogLilaLama)
	assert.Equal(t, &lk, entry.LogLingkarKepalaLama)
	assert.Equal(t, model.CaraUkurBerdiri, entry.LogCaraUkurLama)
	assert.Equal(t, &vitA, entry.LogVitALama)
	assert.True(t, entry.LogAsiBulan0Lama)
	assert.False(t, entry.LogAsiBulan1Lama)
	assert.True(t, entry.LogAsiBulan2Lama)
	assert.False(t, entry.LogAsiBulan3Lama)
	assert.False(t, entry.LogAsiBulan4Lama)
	assert.False(t, entry.LogAsiBulan5Lama)
	assert.True(t, entry.LogAsiBulan6Lama)
	assert.True(t, entry.LogKelasIbuBalitaLama)

	// log_diubah_pada = saat pengarsipan, bukan tanggal ukur
	assert.Equal(t, now, entry.LogDiubahPada)
}
