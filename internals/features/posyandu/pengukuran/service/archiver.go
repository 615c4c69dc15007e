package service

import (
	"time"

	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	logModel "posyanduku_backend/internals/features/posyandu/log_pengukuran/model"
	"posyanduku_backend/internals/features/posyandu/pengukuran/model"
)

// SnapshotLog menyalin seluruh field mutable pengukuran yang akan
// ditimpa ke baris log baru. log_diubah_pada diisi saat pengarsipan
// (menandai kapan nilai digantikan, bukan tanggal ukur aslinya).
func SnapshotLog(anak *anakModel.AnakModel, existing *model.PengukuranModel, now time.Time) *logModel.LogPengukuranModel {
	return &logModel.LogPengukuranModel{
		LogAnakID:  anak.AnakID,
		LogAnakNIK: anak.AnakNIK,

		LogPosyanduIDLama:  existing.PengukuranPosyanduID,
		LogTanggalUkurLama: existing.PengukuranTanggalUkur,

		LogBeratLama:         existing.PengukuranBerat,
		LogTinggiLama:        existing.PengukuranTinggi,
		LogLilaLama:          existing.PengukuranLila,
		LogLingkarKepalaLama: existing.PengukuranLingkarKepala,

		LogCaraUkurLama: existing.PengukuranCaraUkur,
		LogVitALama:     existing.PengukuranVitA,

		LogAsiBulan0Lama: existing.PengukuranAsiBulan0,
		LogAsiBulan1Lama: existing.PengukuranAsiBulan1,
		LogAsiBulan2Lama: existing.PengukuranAsiBulan2,
		LogAsiBulan3Lama: existing.PengukuranAsiBulan3,
		LogAsiBulan4Lama: existing.PengukuranAsiBulan4,
		LogAsiBulan5Lama: existing.PengukuranAsiBulan5,
		LogAsiBulan6Lama: existing.PengukuranAsiBulan6,

		LogKelasIbuBalitaLama: existing.PengukuranKelasIbuBalita,

		LogDiubahPada: now,
	}
}
