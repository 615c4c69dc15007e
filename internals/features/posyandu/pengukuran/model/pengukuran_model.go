package model

import (
	"time"

	"github.com/google/uuid"

	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	posyanduModel "posyanduku_backend/internals/features/posyandu/posyandu/model"
)

// Cara ukur panjang/tinggi badan
const (
	CaraUkurTerlentang = "Terlentang"
	CaraUkurBerdiri    = "Berdiri"
)

// Kapsul vitamin A
const (
	VitABiru  = "Biru"
	VitAMerah = "Merah"
)

// PengukuranModel merepresentasikan tabel anak_pengukuran.
// Satu anak maksimal punya SATU baris pengukuran live (unique pada
// pengukuran_anak_id); nilai lama diarsipkan ke log_pengukuran sebelum
// ditimpa. Mutasi hanya lewat service upsert.
type PengukuranModel struct {
	PengukuranID     uuid.UUID            `gorm:"column:pengukuran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pengukuran_id"`
	PengukuranAnakID uuid.UUID            `gorm:"column:pengukuran_anak_id;type:uuid;uniqueIndex;not null" json:"pengukuran_anak_id"`
	Anak             *anakModel.AnakModel `gorm:"foreignKey:PengukuranAnakID;references:AnakID;constraint:OnDelete:CASCADE" json:"-"`

	PengukuranTanggalUkur time.Time `gorm:"column:pengukuran_tanggal_ukur;type:date;not null" json:"pengukuran_tanggal_ukur"`

	PengukuranPosyanduID *uuid.UUID                   `gorm:"column:pengukuran_posyandu_id;type:uuid" json:"pengukuran_posyandu_id,omitempty"`
	Posyandu             *posyanduModel.PosyanduModel `gorm:"foreignKey:PengukuranPosyanduID;references:PosyanduID;constraint:OnDelete:SET NULL" json:"posyandu,omitempty"`

	PengukuranBerat         float64  `gorm:"column:pengukuran_berat;not null" json:"pengukuran_berat"`
	PengukuranTinggi        float64  `gorm:"column:pengukuran_tinggi;not null" json:"pengukuran_tinggi"`
	PengukuranLila          *float64 `gorm:"column:pengukuran_lila" json:"pengukuran_lila,omitempty"`
	PengukuranLingkarKepala *float64 `gorm:"column:pengukuran_lingkar_kepala" json:"pengukuran_lingkar_kepala,omitempty"`

	PengukuranCaraUkur string  `gorm:"column:pengukuran_cara_ukur;size:20;not null" json:"pengukuran_cara_ukur"`
	PengukuranVitA     *string `gorm:"column:pengukuran_vit_a;size:10" json:"pengukuran_vit_a,omitempty"`

	// ASI eksklusif bulan ke-0 s/d ke-6
	PengukuranAsiBulan0 bool `gorm:"column:pengukuran_asi_bulan_0;not null;default:false" json:"pengukuran_asi_bulan_0"`
	PengukuranAsiBulan1 bool `gorm:"column:pengukuran_asi_bulan_1;not null;default:false" json:"pengukuran_asi_bulan_1"`
	PengukuranAsiBulan2 bool `gorm:"column:pengukuran_asi_bulan_2;not null;default:false" json:"pengukuran_asi_bulan_2"`
	PengukuranAsiBulan3 bool `gorm:"column:pengukuran_asi_bulan_3;not null;default:false" json:"pengukuran_asi_bulan_3"`
	PengukuranAsiBulan4 bool `gorm:"column:pengukuran_asi_bulan_4;not null;default:false" json:"pengukuran_asi_bulan_4"`
	PengukuranAsiBulan5 bool `gorm:"column:pengukuran_asi_bulan_5;not null;default:false" json:"pengukuran_asi_bulan_5"`
	PengukuranAsiBulan6 bool `gorm:"column:pengukuran_asi_bulan_6;not null;default:false" json:"pengukuran_asi_bulan_6"`

	PengukuranKelasIbuBalita bool `gorm:"column:pengukuran_kelas_ibu_balita;not null;default:false" json:"pengukuran_kelas_ibu_balita"`

	PengukuranCreatedAt time.Time `gorm:"column:pengukuran_created_at;autoCreateTime" json:"pengukuran_created_at"`
	PengukuranUpdatedAt time.Time `gorm:"column:pengukuran_updated_at;autoUpdateTime" json:"pengukuran_updated_at"`
}

func (PengukuranModel) TableName() string {
	return "anak_pengukuran"
}
