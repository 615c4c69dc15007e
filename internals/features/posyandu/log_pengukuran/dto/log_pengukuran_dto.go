package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"posyanduku_backend/internals/features/posyandu/log_pengukuran/model"
	posyanduDTO "posyanduku_backend/internals/features/posyandu/posyandu/dto"
)

const dateLayout = "2006-01-02"

/* ===========================
   Request DTO (koreksi admin; upsert engine menulis log langsung)
   =========================== */

type LogPengukuranRequest struct {
	LogAnakID  *uuid.UUID `json:"log_anak_id,omitempty"`
	LogAnakNIK string     `json:"log_anak_nik" validate:"required,len=16,numeric"`

	LogPosyanduIDLama  *uuid.UUID `json:"log_posyandu_id_lama,omitempty"`
	LogTanggalUkurLama string     `json:"log_tanggal_ukur_lama" validate:"required,datetime=2006-01-02"`

	LogBeratLama         *float64 `json:"log_berat_lama" validate:"required,gt=0"`
	LogTinggiLama        *float64 `json:"log_tinggi_lama" validate:"required,gt=0"`
	LogLilaLama          *float64 `json:"log_lila_lama,omitempty" validate:"omitempty,gt=0"`
	LogLingkarKepalaLama *float64 `json:"log_lingkar_kepala_lama,omitempty" validate:"omitempty,gt=0"`

	LogCaraUkurLama string  `json:"log_cara_ukur_lama" validate:"required,oneof=Terlentang Berdiri"`
	LogVitALama     *string `json:"log_vit_a_lama,omitempty" validate:"omitempty,oneof=Biru Merah"`

	LogAsiBulan0Lama *bool `json:"log_asi_bulan_0_lama,omitempty"`
	LogAsiBulan1Lama *bool `json:"log_asi_bulan_1_lama,omitempty"`
	LogAsiBulan2Lama *bool `json:"log_asi_bulan_2_lama,omitempty"`
	LogAsiBulan3Lama *bool `json:"log_asi_bulan_3_lama,omitempty"`
	LogAsiBulan4Lama *bool `json:"log_asi_bulan_4_lama,omitempty"`
	LogAsiBulan5Lama *bool `json:"log_asi_bulan_5_lama,omitempty"`
	LogAsiBulan6Lama *bool `json:"log_asi_bulan_6_lama,omitempty"`

	LogKelasIbuBalitaLama *bool `json:"log_kelas_ibu_balita_lama,omitempty"`
}

func (r *LogPengukuranRequest) Normalize() {
	r.LogAnakNIK = strings.TrimSpace(r.LogAnakNIK)
	r.LogTanggalUkurLama = strings.TrimSpace(r.LogTanggalUkurLama)
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}

// ApplyToModel menimpa field snapshot; identitas baris dan log_diubah_pada
// tidak disentuh (diisi pemanggil).
func (r *LogPengukuranRequest) ApplyToModel(m *model.LogPengukuranModel) {
	tgl, _ := time.Parse(dateLayout, r.LogTanggalUkurLama)
	m.LogAnakNIK = r.LogAnakNIK
	m.LogPosyanduIDLama = r.LogPosyanduIDLama
	m.LogTanggalUkurLama = tgl
	m.LogBeratLama = *r.LogBeratLama
	m.LogTinggiLama = *r.LogTinggiLama
	m.LogLilaLama = r.LogLilaLama
	m.LogLingkarKepalaLama = r.LogLingkarKepalaLama
	m.LogCaraUkurLama = r.LogCaraUkurLama
	m.LogVitALama = r.LogVitALama
	m.LogAsiBulan0Lama = boolOrFalse(r.LogAsiBulan0Lama)
	m.LogAsiBulan1Lama = boolOrFalse(r.LogAsiBulan1Lama)
	m.LogAsiBulan2Lama = boolOrFalse(r.LogAsiBulan2Lama)
	m.LogAsiBulan3Lama = boolOrFalse(r.LogAsiBulan3Lama)
	m.LogAsiBulan4Lama = boolOrFalse(r.LogAsiBulan4Lama)
	m.LogAsiBulan5Lama = boolOrFalse(r.LogAsiBulan5Lama)
	m.LogAsiBulan6Lama = boolOrFalse(r.LogAsiBulan6Lama)
	m.LogKelasIbuBalitaLama = boolOrFalse(r.LogKelasIbuBalitaLama)
	m.Posyandu = nil
}

/* ===========================
   Response DTO
   =========================== */

type LogPengukuranResponse struct {
	LogID      uuid.UUID `json:"log_id"`
	LogAnakID  uuid.UUID `json:"log_anak_id"`
	LogAnakNIK string    `json:"log_anak_nik"`

	LogPosyanduIDLama *uuid.UUID                    `json:"log_posyandu_id_lama,omitempty"`
	Posyandu          *posyanduDTO.PosyanduResponse `json:"posyandu,omitempty"`

	LogTanggalUkurLama string `json:"log_tanggal_ukur_lama"`

	LogBeratLama         float64  `json:"log_berat_lama"`
	LogTinggiLama        float64  `json:"log_tinggi_lama"`
	LogLilaLama          *float64 `json:"log_lila_lama,omitempty"`
	LogLingkarKepalaLama *float64 `json:"log_lingkar_kepala_lama,omitempty"`

	LogCaraUkurLama string  `json:"log_cara_ukur_lama"`
	LogVitALama     *string `json:"log_vit_a_lama,omitempty"`

	LogAsiBulan0Lama bool `json:"log_asi_bulan_0_lama"`
	LogAsiBulan1Lama bool `json:"log_asi_bulan_1_lama"`
	LogAsiBulan2Lama bool `json:"log_asi_bulan_2_lama"`
	LogAsiBulan3Lama bool `json:"log_asi_bulan_3_lama"`
	LogAsiBulan4Lama bool `json:"log_asi_bulan_4_lama"`
	LogAsiBulan5Lama bool `json:"log_asi_bulan_5_lama"`
	LogAsiBulan6Lama bool `json:"log_asi_bulan_6_lama"`

	LogKelasIbuBalitaLama bool `json:"log_kelas_ibu_balita_lama"`

	LogDiubahPada time.Time `json:"log_diubah_pada"`
}

func FromModel(m *model.LogPengukuranModel) LogPengukuranResponse {
	resp := LogPengukuranResponse{
		LogID:                 m.LogID,
		LogAnakID:             m.LogAnakID,
		LogAnakNIK:            m.LogAnakNIK,
		LogPosyanduIDLama:     m.LogPosyanduIDLama,
		LogTanggalUkurLama:    m.LogTanggalUkurLama.Format(dateLayout),
		LogBeratLama:          m.LogBeratLama,
		LogTinggiLama:         m.LogTinggiLama,
		LogLilaLama:           m.LogLilaLama,
		LogLingkarKepalaLama:  m.LogLingkarKepalaLama,
		LogCaraUkurLama:       m.LogCaraUkurLama,
		LogVitALama:           m.LogVitALama,
		LogAsiBulan0Lama:      m.LogAsiBulan0Lama,
		LogAsiBulan1Lama:      m.LogAsiBulan1Lama,
		LogAsiBulan2Lama:      m.LogAsiBulan2Lama,
		LogAsiBulan3Lama:      m.LogAsiBulan3Lama,
		LogAsiBulan4Lama:      m.LogAsiBulan4Lama,
		LogAsiBulan5Lama:      m.LogAsiBulan5Lama,
		LogAsiBulan6Lama:      m.LogAsiBulan6Lama,
		LogKelasIbuBalitaLama: m.LogKelasIbuBalitaLama,
		LogDiubahPada:         m.LogDiubahPada,
	}
	if m.Posyandu != nil {
		p := posyanduDTO.FromModel(m.Posyandu)
		resp.Posyandu = &p
	}
	return resp
}

func FromModelList(ms []model.LogPengukuranModel) []LogPengukuranResponse {
	out := make([]LogPengukuranResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
