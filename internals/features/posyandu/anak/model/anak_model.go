package model

import (
	"time"

	"github.com/google/uuid"

	posyanduModel "posyanduku_backend/internals/features/posyandu/posyandu/model"
)

// AnakModel merepresentasikan tabel anak.
// NIK adalah natural key (16 digit, unik); anak_id adalah identitas internal.
type AnakModel struct {
	AnakID  uuid.UUID `gorm:"column:anak_id;type:uuid;default:gen_random_uuid();primaryKey" json:"anak_id"`
	AnakNIK string    `gorm:"column:anak_nik;type:char(16);uniqueIndex;not null" json:"anak_nik"`

	AnakKe           *int      `gorm:"column:anak_ke" json:"anak_ke,omitempty"`
	AnakTglLahir     time.Time `gorm:"column:anak_tgl_lahir;type:date;not null" json:"anak_tgl_lahir"`
	AnakJenisKelamin string    `gorm:"column:anak_jenis_kelamin;type:varchar(1);not null" json:"anak_jenis_kelamin"` // L / P
	AnakNomorKK      *string   `gorm:"column:anak_nomor_kk;size:20" json:"anak_nomor_kk,omitempty"`
	AnakNama         string    `gorm:"column:anak_nama;size:100;not null" json:"anak_nama"`

	// Kondisi lahir
	AnakUsiaHamil          *int     `gorm:"column:anak_usia_hamil" json:"anak_usia_hamil,omitempty"`
	AnakBeratLahir         *float64 `gorm:"column:anak_berat_lahir" json:"anak_berat_lahir,omitempty"`
	AnakPanjangLahir       *float64 `gorm:"column:anak_panjang_lahir" json:"anak_panjang_lahir,omitempty"`
	AnakLingkarKepalaLahir *float64 `gorm:"column:anak_lingkar_kepala_lahir" json:"anak_lingkar_kepala_lahir,omitempty"`
	AnakKIA                bool     `gorm:"column:anak_kia;not null;default:false" json:"anak_kia"`
	AnakKIABayiKecil       bool     `gorm:"column:anak_kia_bayi_kecil;not null;default:false" json:"anak_kia_bayi_kecil"`
	AnakIMD                bool     `gorm:"column:anak_imd;not null;default:false" json:"anak_imd"`

	// Orang tua
	AnakNamaOrtu *string `gorm:"column:anak_nama_ortu;size:100" json:"anak_nama_ortu,omitempty"`
	AnakNIKOrtu  *string `gorm:"column:anak_nik_ortu;size:16" json:"anak_nik_ortu,omitempty"`
	AnakHPOrtu   *string `gorm:"column:anak_hp_ortu;size:20" json:"anak_hp_ortu,omitempty"`

	// Afiliasi posyandu (nullable; di-null-kan saat posyandu dihapus)
	AnakPosyanduID *uuid.UUID                   `gorm:"column:anak_posyandu_id;type:uuid" json:"anak_posyandu_id,omitempty"`
	Posyandu       *posyanduModel.PosyanduModel `gorm:"foreignKey:AnakPosyanduID;references:PosyanduID;constraint:OnDelete:SET NULL" json:"posyandu,omitempty"`

	AnakRT *string `gorm:"column:anak_rt;size:5" json:"anak_rt,omitempty"`
	AnakRW *string `gorm:"column:anak_rw;size:5" json:"anak_rw,omitempty"`

	AnakCreatedAt time.Time `gorm:"column:anak_created_at;autoCreateTime" json:"anak_created_at"`
	AnakUpdatedAt time.Time `gorm:"column:anak_updated_at;autoUpdateTime" json:"anak_updated_at"`
}

func (AnakModel) TableName() string {
	return "anak"
}
