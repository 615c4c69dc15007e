package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"posyanduku_backend/internals/features/posyandu/anak/model"
	posyanduDTO "posyanduku_backend/internals/features/posyandu/posyandu/dto"
)

const dateLayout = "2006-01-02"

/* ===========================
   Request DTO
   =========================== */

type CreateAnakRequest struct {
	AnakNIK          string `json:"anak_nik" validate:"required,len=16,numeric"`
	AnakKe           *int   `json:"anak_ke,omitempty" validate:"omitempty,min=1"`
	AnakTglLahir     string `json:"anak_tgl_lahir" validate:"required,datetime=2006-01-02"`
	AnakJenisKelamin string `json:"anak_jenis_kelamin" validate:"required,oneof=L P"`
	AnakNomorKK      *string `json:"anak_nomor_kk,omitempty" validate:"omitempty,max=20,numeric"`
	AnakNama         string `json:"anak_nama" validate:"required,min=2,max=100"`

	AnakUsiaHamil          *int     `json:"anak_usia_hamil,omitempty" validate:"omitempty,min=1,max=45"`
	AnakBeratLahir         *float64 `json:"anak_berat_lahir,omitempty" validate:"omitempty,gt=0"`
	AnakPanjangLahir       *float64 `json:"anak_panjang_lahir,omitempty" validate:"omitempty,gt=0"`
	AnakLingkarKepalaLahir *float64 `json:"anak_lingkar_kepala_lahir,omitempty" validate:"omitempty,gt=0"`
	AnakKIA                *bool    `json:"anak_kia,omitempty"`
	AnakKIABayiKecil       *bool    `json:"anak_kia_bayi_kecil,omitempty"`
	AnakIMD                *bool    `json:"anak_imd,omitempty"`

	AnakNamaOrtu *string `json:"anak_nama_ortu,omitempty" validate:"omitempty,max=100"`
	AnakNIKOrtu  *string `json:"anak_nik_ortu,omitempty" validate:"omitempty,len=16,numeric"`
	AnakHPOrtu   *string `json:"anak_hp_ortu,omitempty" validate:"omitempty,max=20"`

	AnakPosyanduID *uuid.UUID `json:"anak_posyandu_id,omitempty"`

	AnakRT *string `json:"anak_rt,omitempty" validate:"omitempty,max=5"`
	AnakRW *string `json:"anak_rw,omitempty" validate:"omitempty,max=5"`
}

type UpdateAnakRequest = CreateAnakRequest

func (r *CreateAnakRequest) Normalize() {
	r.AnakNIK = strings.TrimSpace(r.AnakNIK)
	r.AnakNama = strings.TrimSpace(r.AnakNama)
	r.AnakJenisKelamin = strings.ToUpper(strings.TrimSpace(r.AnakJenisKelamin))
	r.AnakTglLahir = strings.TrimSpace(r.AnakTglLahir)
}

// ToModel mengasumsikan request sudah lolos validasi (tanggal valid)
func (r *CreateAnakRequest) ToModel() *model.AnakModel {
	tgl, _ := time.Parse(dateLayout, r.AnakTglLahir)
	m := &model.AnakModel{
		AnakNIK:                r.AnakNIK,
		AnakKe:                 r.AnakKe,
		AnakTglLahir:           tgl,
		AnakJenisKelamin:       r.AnakJenisKelamin,
		AnakNomorKK:            r.AnakNomorKK,
		AnakNama:               r.AnakNama,
		AnakUsiaHamil:          r.AnakUsiaHamil,
		AnakBeratLahir:         r.AnakBeratLahir,
		AnakPanjangLahir:       r.AnakPanjangLahir,
		AnakLingkarKepalaLahir: r.AnakLingkarKepalaLahir,
		AnakNamaOrtu:           r.AnakNamaOrtu,
		AnakNIKOrtu:            r.AnakNIKOrtu,
		AnakHPOrtu:             r.AnakHPOrtu,
		AnakPosyanduID:         r.AnakPosyanduID,
		AnakRT:                 r.AnakRT,
		AnakRW:                 r.AnakRW,
	}
	if r.AnakKIA != nil {
		m.AnakKIA = *r.AnakKIA
	}
	if r.AnakKIABayiKecil != nil {
		m.AnakKIABayiKecil = *r.AnakKIABayiKecil
	}
	if r.AnakIMD != nil {
		m.AnakIMD = *r.AnakIMD
	}
	return m
}

// ApplyToModel menimpa seluruh field fillable (full-record replace)
func (r *CreateAnakRequest) ApplyToModel(m *model.AnakModel) {
	tgl, _ := time.Parse(dateLayout, r.AnakTglLahir)
	m.AnakNIK = r.AnakNIK
	m.AnakKe = r.AnakKe
	m.AnakTglLahir = tgl
	m.AnakJenisKelamin = r.AnakJenisKelamin
	m.AnakNomorKK = r.AnakNomorKK
	m.AnakNama = r.AnakNama
	m.AnakUsiaHamil = r.AnakUsiaHamil
	m.AnakBeratLahir = r.AnakBeratLahir
	m.AnakPanjangLahir = r.AnakPanjangLahir
	m.AnakLingkarKepalaLahir = r.AnakLingkarKepalaLahir
	m.AnakNamaOrtu = r.AnakNamaOrtu
	m.AnakNIKOrtu = r.AnakNIKOrtu
	m.AnakHPOrtu = r.AnakHPOrtu
	m.AnakPosyanduID = r.AnakPosyanduID
	m.AnakRT = r.AnakRT
	m.AnakRW = r.AnakRW
	if r.AnakKIA != nil {
		m.AnakKIA = *r.AnakKIA
	}
	if r.AnakKIABayiKecil != nil {
		m.AnakKIABayiKecil = *r.AnakKIABayiKecil
	}
	if r.AnakIMD != nil {
		m.AnakIMD = *r.AnakIMD
	}
}

/* ===========================
   Response DTO
   =========================== */

type AnakResponse struct {
	AnakID           uuid.UUID `json:"anak_id"`
	AnakNIK          string    `json:"anak_nik"`
	AnakKe           *int      `json:"anak_ke,omitempty"`
	AnakTglLahir     string    `json:"anak_tgl_lahir"`
	AnakJenisKelamin string    `json:"anak_jenis_kelamin"`
	AnakNomorKK      *string   `json:"anak_nomor_kk,omitempty"`
	AnakNama         string    `json:"anak_nama"`

	AnakUsiaHamil          *int     `json:"anak_usia_hamil,omitempty"`
	AnakBeratLahir         *float64 `json:"anak_berat_lahir,omitempty"`
	AnakPanjangLahir       *float64 `json:"anak_panjang_lahir,omitempty"`
	AnakLingkarKepalaLahir *float64 `json:"anak_lingkar_kepala_lahir,omitempty"`
	AnakKIA                bool     `json:"anak_kia"`
	AnakKIABayiKecil       bool     `json:"anak_kia_bayi_kecil"`
	AnakIMD                bool     `json:"anak_imd"`

	AnakNamaOrtu *string `json:"anak_nama_ortu,omitempty"`
	AnakNIKOrtu  *string `json:"anak_nik_ortu,omitempty"`
	AnakHPOrtu   *string `json:"anak_hp_ortu,omitempty"`

	AnakPosyanduID *uuid.UUID                    `json:"anak_posyandu_id,omitempty"`
	Posyandu       *posyanduDTO.PosyanduResponse `json:"posyandu,omitempty"`

	AnakRT *string `json:"anak_rt,omitempty"`
	AnakRW *string `json:"anak_rw,omitempty"`

	AnakCreatedAt time.Time `json:"anak_created_at"`
	AnakUpdatedAt time.Time `json:"anak_updated_at"`
}

func FromModel(m *model.AnakModel) AnakResponse {
	resp := AnakResponse{
		AnakID:                 m.AnakID,
		AnakNIK:                m.AnakNIK,
		AnakKe:                 m.AnakKe,
		AnakTglLahir:           m.AnakTglLahir.Format(dateLayout),
		AnakJenisKelamin:       m.AnakJenisKelamin,
		AnakNomorKK:            m.AnakNomorKK,
		AnakNama:               m.AnakNama,
		AnakUsiaHamil:          m.AnakUsiaHamil,
		AnakBeratLahir:         m.AnakBeratLahir,
		AnakPanjangLahir:       m.AnakPanjangLahir,
		AnakLingkarKepalaLahir: m.AnakLingkarKepalaLahir,
		AnakKIA:                m.AnakKIA,
		AnakKIABayiKecil:       m.AnakKIABayiKecil,
		AnakIMD:                m.AnakIMD,
		AnakNamaOrtu:           m.AnakNamaOrtu,
		AnakNIKOrtu:            m.AnakNIKOrtu,
		AnakHPOrtu:             m.AnakHPOrtu,
		AnakPosyanduID:         m.AnakPosyanduID,
		AnakRT:                 m.AnakRT,
		AnakRW:                 m.AnakRW,
		AnakCreatedAt:          m.AnakCreatedAt,
		AnakUpdatedAt:          m.AnakUpdatedAt,
	}
	if m.Posyandu != nil {
		p := posyanduDTO.FromModel(m.Posyandu)
		resp.Posyandu = &p
	}
	return resp
}

func FromModelList(ms []model.AnakModel) []AnakResponse {
	out := make([]AnakResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
