package model

import (
	"time"

	"github.com/google/uuid"

	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	posyanduModel "posyanduku_backend/internals/features/posyandu/posyandu/model"
)

// LogPengukuranModel merepresentasikan tabel log_pengukuran: snapshot
// nilai pengukuran SEBELUM ditimpa. Anak direferensikan ganda (id internal
// + NIK) supaya riwayat tetap terbaca walau resolusi identitas berubah.
// log_diubah_pada adalah saat nilai digantikan, bukan tanggal ukurnya.
type LogPengukuranModel struct {
	LogID      uuid.UUID            `gorm:"column:log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"log_id"`
	LogAnakID  uuid.UUID            `gorm:"column:log_anak_id;type:uuid;not null" json:"log_anak_id"`
	Anak       *anakModel.AnakModel `gorm:"foreignKey:LogAnakID;references:AnakID;constraint:OnDelete:CASCADE" json:"-"`
	LogAnakNIK string               `gorm:"column:log_anak_nik;type:char(16);not null" json:"log_anak_nik"`

	LogPosyanduIDLama *uuid.UUID                   `gorm:"column:log_posyandu_id_lama;type:uuid" json:"log_posyandu_id_lama,omitempty"`
	Posyandu          *posyanduModel.PosyanduModel `gorm:"foreignKey:LogPosyanduIDLama;references:PosyanduID;constraint:OnDelete:SET NULL" json:"posyandu,omitempty"`

	LogTanggalUkurLama time.Time `gorm:"column:log_tanggal_ukur_lama;type:date;not null" json:"log_tanggal_ukur_lama"`

	LogBeratLama         float64  `gorm:"column:log_berat_lama;not null" json:"log_berat_lama"`
	LogTinggiLama        float64  `gorm:"column:log_tinggi_lama;not null" json:"log_tinggi_lama"`
	LogLilaLama          *float64 `gorm:"column:log_lila_lama" json:"log_lila_lama,omitempty"`
	LogLingkarKepalaLama *float64 `gorm:"column:log_lingkar_kepala_lama" json:"log_lingkar_kepala_lama,omitempty"`

	LogCaraUkurLama string  `gorm:"column:log_cara_ukur_lama;size:20;not null" json:"log_cara_ukur_lama"`
	LogVitALama     *string `gorm:"column:log_vit_a_lama;size:10" json:"log_vit_a_lama,omitempty"`

	LogAsiBulan0Lama bool `gorm:"column:log_asi_bulan_0_lama;not null;default:false" json:"log_asi_bulan_0_lama"`
	LogAsiBulan1Lama bool `gorm:"column:log_asi_bulan_1_lama;not null;default:false" json:"log_asi_bulan_1_lama"`
	LogAsiBulan2Lama bool `gorm:"column:log_asi_bulan_2_lama;not null;default:false" json:"log_asi_bulan_2_lama"`
	LogAsiBulan3Lama bool `gorm:"column:log_asi_bulan_3_lama;not null;default:false" json:"log_asi_bulan_3_lama"`
	LogAsiBulan4Lama bool `gorm:"column:log_asi_bulan_4_lama;not null;default:false" json:"log_asi_bulan_4_lama"`
	LogAsiBulan5Lama bool `gorm:"column:log_asi_bulan_5_lama;not null;default:false" json:"log_asi_bulan_5_lama"`
	LogAsiBulan6Lama bool `gorm:"column:log_asi_bulan_6_lama;not null;default:false" json:"log_asi_bulan_6_lama"`

	LogKelasIbuBalitaLama bool `gorm:"column:log_kelas_ibu_balita_lama;not null;default:false" json:"log_kelas_ibu_balita_lama"`

	LogDiubahPada time.Time `gorm:"column:log_diubah_pada;not null;default:now()" json:"log_diubah_pada"`
}

func (LogPengukuranModel) TableName() string {
	return "log_pengukuran"
}
