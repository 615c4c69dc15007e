package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"posyanduku_backend/internals/features/posyandu/posyandu/model"
)

/* ===========================
   Request DTO
   =========================== */

type CreatePosyanduRequest struct {
	PosyanduDesa string `json:"posyandu_desa" validate:"required,min=2,max=100"`
	PosyanduNama string `json:"posyandu_nama" validate:"required,min=2,max=100"`
}

func (r *CreatePosyanduRequest) Normalize() {
	r.PosyanduDesa = strings.TrimSpace(r.PosyanduDesa)
	r.PosyanduNama = strings.TrimSpace(r.PosyanduNama)
}

func (r *CreatePosyanduRequest) ToModel() *model.PosyanduModel {
	return &model.PosyanduModel{
		PosyanduDesa: r.PosyanduDesa,
		PosyanduNama: r.PosyanduNama,
	}
}

type UpdatePosyanduRequest = CreatePosyanduRequest

/* ===========================
   Response DTO
   =========================== */

type PosyanduResponse struct {
	PosyanduID        uuid.UUID `json:"posyandu_id"`
	PosyanduDesa      string    `json:"posyandu_desa"`
	PosyanduNama      string    `json:"posyandu_nama"`
	PosyanduCreatedAt time.Time `json:"posyandu_created_at"`
	PosyanduUpdatedAt time.Time `json:"posyandu_updated_at"`
}

func FromModel(m *model.PosyanduModel) PosyanduResponse {
	return PosyanduResponse{
		PosyanduID:        m.PosyanduID,
		PosyanduDesa:      m.PosyanduDesa,
		PosyanduNama:      m.PosyanduNama,
		PosyanduCreatedAt: m.PosyanduCreatedAt,
		PosyanduUpdatedAt: m.PosyanduUpdatedAt,
	}
}

func FromModelList(ms []model.PosyanduModel) []PosyanduResponse {
	out := make([]PosyanduResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
