package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	anakDTO "posyanduku_backend/internals/features/posyandu/anak/dto"
	anakModel "posyanduku_backend/internals/features/posyandu/anak/model"
	"posyanduku_backend/internals/features/posyandu/pengukuran/model"
	posyanduDTO "posyanduku_backend/internals/features/posyandu/posyandu/dto"
)

const dateLayout = "2006-01-02"

/* ===========================
   Request DTO
   =========================== */

// PengukuranInput adalah payload upsert/update pengukuran.
// Anak tidak pernah dibuat dari sini; anak_id/NIK hanya me-resolve
// anak yang sudah ada.
type PengukuranInput struct {
	PengukuranAnakID *uuid.UUID `json:"pengukuran_anak_id,omitempty"`

	PengukuranTanggalUkur string     `json:"pengukuran_tanggal_ukur" validate:"required,datetime=2006-01-02"`
	PengukuranPosyanduID  *uuid.UUID `json:"pengukuran_posyandu_id,omitempty"`

	PengukuranBerat         *float64 `json:"pengukuran_berat" validate:"required,gt=0"`
	PengukuranTinggi        *float64 `json:"pengukuran_tinggi" validate:"required,gt=0"`
	PengukuranLila          *float64 `json:"pengukuran_lila,omitempty" validate:"omitempty,gt=0"`
	PengukuranLingkarKepala *float64 `json:"pengukuran_lingkar_kepala,omitempty" validate:"omitempty,gt=0"`

	PengukuranCaraUkur string  `json:"pengukuran_cara_ukur" validate:"required,oneof=Terlentang Berdiri"`
	PengukuranVitA     *string `json:"pengukuran_vit_a,omitempty" validate:"omitempty,oneof=Biru Merah"`

	PengukuranAsiBulan0 *bool `json:"pengukuran_asi_bulan_0,omitempty"`
	PengukuranAsiBulan1 *bool `json:"pengukuran_asi_bulan_1,omitempty"`
	PengukuranAsiBulan2 *bool `json:"pengukuran_asi_bulan_2,omitempty"`
	PengukuranAsiBulan3 *bool `json:"pengukuran_asi_bulan_3,omitempty"`
	PengukuranAsiBulan4 *bool `json:"pengukuran_asi_bulan_4,omitempty"`
	PengukuranAsiBulan5 *bool `json:"pengukuran_asi_bulan_5,omitempty"`
	PengukuranAsiBulan6 *bool `json:"pengukuran_asi_bulan_6,omitempty"`

	PengukuranKelasIbuBalita *bool `json:"pengukuran_kelas_ibu_balita,omitempty"`
}

func (r *PengukuranInput) Normalize() {
	r.PengukuranTanggalUkur = strings.TrimSpace(r.PengukuranTanggalUkur)
	// sumber data lama mencampur "terlentang"/"Terlentang" dsb.
	r.PengukuranCaraUkur = capitalize(r.PengukuranCaraUkur)
	if r.PengukuranVitA != nil {
		v := capitalize(*r.PengukuranVitA)
		r.PengukuranVitA = &v
	}
}

func capitalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}

// ToModel membangun baris pengukuran baru untuk anak tertentu.
// Mengasumsikan input sudah lolos validasi.
func (r *PengukuranInput) ToModel(anakID uuid.UUID) *model.PengukuranModel {
	m := &model.PengukuranModel{PengukuranAnakID: anakID}
	r.ApplyToModel(m)
	return m
}

// ApplyToModel menimpa seluruh field mutable; identitas baris
// (pengukuran_id, pengukuran_anak_id) tidak disentuh.
func (r *PengukuranInput) ApplyToModel(m *model.PengukuranModel) {
	tgl, _ := time.Parse(dateLayout, r.PengukuranTanggalUkur)
	m.PengukuranTanggalUkur = tgl
	m.PengukuranPosyanduID = r.PengukuranPosyanduID
	m.PengukuranBerat = *r.PengukuranBerat
	m.PengukuranTinggi = *r.PengukuranTinggi
	m.PengukuranLila = r.PengukuranLila
	m.PengukuranLingkarKepala = r.PengukuranLingkarKepala
	m.PengukuranCaraUkur = r.PengukuranCaraUkur
	m.PengukuranVitA = r.PengukuranVitA
	m.PengukuranAsiBulan0 = boolOrFalse(r.PengukuranAsiBulan0)
	m.PengukuranAsiBulan1 = boolOrFalse(r.PengukuranAsiBulan1)
	m.PengukuranAsiBulan2 = boolOrFalse(r.PengukuranAsiBulan2)
	m.PengukuranAsiBulan3 = boolOrFalse(r.PengukuranAsiBulan3)
	m.PengukuranAsiBulan4 = boolOrFalse(r.PengukuranAsiBulan4)
	m.PengukuranAsiBulan5 = boolOrFalse(r.PengukuranAsiBulan5)
	m.PengukuranAsiBulan6 = boolOrFalse(r.PengukuranAsiBulan6)
	m.PengukuranKelasIbuBalita = boolOrFalse(r.PengukuranKelasIbuBalita)
	m.Posyandu = nil
}

/* ===========================
   Response DTO
   =========================== */

type PengukuranResponse struct {
	PengukuranID     uuid.UUID `json:"pengukuran_id"`
	PengukuranAnakID uuid.UUID `json:"pengukuran_anak_id"`

	PengukuranTanggalUkur string `json:"pengukuran_tanggal_ukur"`

	PengukuranPosyanduID *uuid.UUID                    `json:"pengukuran_posyandu_id,omitempty"`
	Posyandu             *posyanduDTO.PosyanduResponse `json:"posyandu,omitempty"`
	Anak                 *anakDTO.AnakResponse         `json:"anak,omitempty"`

	PengukuranBerat         float64  `json:"pengukuran_berat"`
	PengukuranTinggi        float64  `json:"pengukuran_tinggi"`
	PengukuranLila          *float64 `json:"pengukuran_lila,omitempty"`
	PengukuranLingkarKepala *float64 `json:"pengukuran_lingkar_kepala,omitempty"`

	PengukuranCaraUkur string  `json:"pengukuran_cara_ukur"`
	PengukuranVitA     *string `json:"pengukuran_vit_a,omitempty"`

	PengukuranAsiBulan0 bool `json:"pengukuran_asi_bulan_0"`
	PengukuranAsiBulan1 bool `json:"pengukuran_asi_bulan_1"`
	PengukuranAsiBulan2 bool `json:"pengukuran_asi_bulan_2"`
	PengukuranAsiBulan3 bool `json:"pengukuran_asi_bulan_3"`
	PengukuranAsiBulan4 bool `json:"pengukuran_asi_bulan_4"`
	PengukuranAsiBulan5 bool `json:"pengukuran_asi_bulan_5"`
	PengukuranAsiBulan6 bool `json:"pengukuran_asi_bulan_6"`

	PengukuranKelasIbuBalita bool `json:"pengukuran_kelas_ibu_balita"`

	PengukuranCreatedAt time.Time `json:"pengukuran_created_at"`
	PengukuranUpdatedAt time.Time `json:"pengukuran_updated_at"`
}

func FromModel(m *model.PengukuranModel) PengukuranResponse {
	resp := PengukuranResponse{
		PengukuranID:             m.PengukuranID,
		PengukuranAnakID:         m.PengukuranAnakID,
		PengukuranTanggalUkur:    m.PengukuranTanggalUkur.Format(dateLayout),
		PengukuranPosyanduID:     m.PengukuranPosyanduID,
		PengukuranBerat:          m.PengukuranBerat,
		PengukuranTinggi:         m.PengukuranTinggi,
		PengukuranLila:           m.PengukuranLila,
		PengukuranLingkarKepala:  m.PengukuranLingkarKepala,
		PengukuranCaraUkur:       m.PengukuranCaraUkur,
		PengukuranVitA:           m.PengukuranVitA,
		PengukuranAsiBulan0:      m.PengukuranAsiBulan0,
		PengukuranAsiBulan1:      m.PengukuranAsiBulan1,
		PengukuranAsiBulan2:      m.PengukuranAsiBulan2,
		PengukuranAsiBulan3:      m.PengukuranAsiBulan3,
		PengukuranAsiBulan4:      m.PengukuranAsiBulan4,
		PengukuranAsiBulan5:      m.PengukuranAsiBulan5,
		PengukuranAsiBulan6:      m.PengukuranAsiBulan6,
		PengukuranKelasIbuBalita: m.PengukuranKelasIbuBalita,
		PengukuranCreatedAt:      m.PengukuranCreatedAt,
		PengukuranUpdatedAt:      m.PengukuranUpdatedAt,
	}
	if m.Posyandu != nil {
		p := posyanduDTO.FromModel(m.Posyandu)
		resp.Posyandu = &p
	}
	return resp
}

// FromModelWithAnak menyertakan data anak pemilik (untuk detail by NIK)
func FromModelWithAnak(m *model.PengukuranModel, anak *anakModel.AnakModel) PengukuranResponse {
	resp := FromModel(m)
	if anak != nil {
		a := anakDTO.FromModel(anak)
		resp.Anak = &a
	}
	return resp
}

func FromModelList(ms []model.PengukuranModel) []PengukuranResponse {
	out := make([]PengukuranResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

/* ===========================
   Upsert result (tagged)
   =========================== */

const (
	DispositionCreated = "created"
	DispositionUpdated = "updated"
)

type UpsertResponse struct {
	Disposition string             `json:"disposition"` // created | updated
	Pengukuran  PengukuranResponse `json:"pengukuran"`
}
