package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"posyanduku_backend/internals/features/posyandu/anak/model"
)

// FindAnakByNIK me-resolve anak lewat natural key (NIK, exact match).
// Mengembalikan gorm.ErrRecordNotFound bila tidak ada; tidak pernah
// membuat anak baru secara implisit.
func FindAnakByNIK(db *gorm.DB, nik string) (*model.AnakModel, error) {
	var anak model.AnakModel
	if err := db.First(&anak, "anak_nik = ?", strings.TrimSpace(nik)).Error; err != nil {
		return nil, err
	}
	return &anak, nil
}

// FindAnakByID mencari anak berdasarkan identitas internal.
func FindAnakByID(db *gorm.DB, id uuid.UUID) (*model.AnakModel, error) {
	var anak model.AnakModel
	if err := db.First(&anak, "anak_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &anak, nil
}

// NIKTaken mengecek keunikan NIK; excludeID mengecualikan baris milik
// record itu sendiri saat update.
func NIKTaken(db *gorm.DB, nik string, excludeID uuid.UUID) (bool, error) {
	var count int64
	tx := db.Model(&model.AnakModel{}).Where("anak_nik = ?", strings.TrimSpace(nik))
	if excludeID != uuid.Nil {
		tx = tx.Where("anak_id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
