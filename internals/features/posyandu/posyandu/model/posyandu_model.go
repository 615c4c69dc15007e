package model

import (
	"time"

	"github.com/google/uuid"
)

// PosyanduModel merepresentasikan tabel posyandu (pos pelayanan terpadu per desa)
type PosyanduModel struct {
	PosyanduID   uuid.UUID `gorm:"column:posyandu_id;type:uuid;default:gen_random_uuid();primaryKey" json:"posyandu_id"`
	PosyanduDesa string    `gorm:"column:posyandu_desa;size:100;not null" json:"posyandu_desa"`
	PosyanduNama string    `gorm:"column:posyandu_nama;size:100;not null" json:"posyandu_nama"`

	PosyanduCreatedAt time.Time `gorm:"column:posyandu_created_at;autoCreateTime" json:"posyandu_created_at"`
	PosyanduUpdatedAt time.Time `gorm:"column:posyandu_updated_at;autoUpdateTime" json:"posyandu_updated_at"`
}

func (PosyanduModel) TableName() string {
	return "posyandu"
}
