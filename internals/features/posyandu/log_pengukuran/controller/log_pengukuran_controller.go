package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	anakRepo "posyanduku_backend/internals/features/posyandu/anak/repository"
	d "posyanduku_backend/internals/features/posyandu/log_pengukuran/dto"
	m "posyanduku_backend/internals/features/posyandu/log_pengukuran/model"
	helper "posyanduku_backend/internals/helpers"
)

type LogPengukuranController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLogPengukuranController(db *gorm.DB, v *validator.Validate) *LogPengukuranController {
	return &LogPengukuranController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, errors.New(name + " wajib diisi")
	}
	return uuid.Parse(idStr)
}

// GET /api/log-pengukuran
// Optional: ?nik=xxx atau ?anak_id=<uuid>; selalu urut terbaru dulu
func (ctl *LogPengukuranController) List(c *fiber.Ctx) error {
	tx := ctl.DB.Preload("Posyandu").Order("log_diubah_pada DESC")

	if nik := strings.TrimSpace(c.Query("nik")); nik != "" {
		tx = tx.Where("log_anak_nik = ?", nik)
	}
	if anakIDStr := strings.TrimSpace(c.Query("anak_id")); anakIDStr != "" {
		anakID, err := uuid.Parse(anakIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "anak_id tidak valid")
		}
		tx = tx.Where("log_anak_id = ?", anakID)
	}

	var rows []m.LogPengukuranModel
	if err := tx.Find(&rows).Error; err != nil {
		log.Println("[ERROR] ListLogPengukuran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log pengukuran")
	}
	return helper.JsonOK(c, "Daftar Log Pengukuran", d.FromModelList(rows))
}

// GET /api/log-pengukuran/:id
func (ctl *LogPengukuranController) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID log tidak valid")
	}

	var row m.LogPengukuranModel
	if err := ctl.DB.Preload("Posyandu").First(&row, "log_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data log tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log pengukuran")
	}
	return helper.JsonOK(c, "Detail Log Pengukuran", d.FromModel(&row))
}

// GET /api/log-pengukuran/nik/:nik — riwayat by NIK, terbaru dulu
func (ctl *LogPengukuranController) ByNIK(c *fiber.Ctx) error {
	anak, err := anakRepo.FindAnakByNIK(ctl.DB, c.Params("nik"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	var rows []m.LogPengukuranModel
	if err := ctl.DB.Preload("Posyandu").
		Where("log_anak_nik = ?", anak.AnakNIK).
		Order("log_diubah_pada DESC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] LogByNIK:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log pengukuran")
	}
	return helper.JsonOK(c, "Log pengukuran berdasarkan NIK", d.FromModelList(rows))
}

// GET /api/log-pengukuran/anak/:anak_id — riwayat by id internal
func (ctl *LogPengukuranController) ByAnakID(c *fiber.Ctx) error {
	anakID, err := parseUUIDParam(c, "anak_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "anak_id tidak valid")
	}

	if _, err := anakRepo.FindAnakByID(ctl.DB, anakID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	var rows []m.LogPengukuranModel
	if err := ctl.DB.Preload("Posyandu").
		Where("log_anak_id = ?", anakID).
		Order("log_diubah_pada DESC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] LogByAnakID:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log pengukuran")
	}
	return helper.JsonOK(c, "Log pengukuran berdasarkan Anak ID", d.FromModelList(rows))
}

// POST /api/log-pengukuran
// Store manual (jarang dipakai; log normalnya ditulis otomatis saat upsert)
func (ctl *LogPengukuranController) Create(c *fiber.Ctx) error {
	var req d.LogPengukuranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	// anak_id di-resolve dari NIK bila tidak dikirim
	anak, err := anakRepo.FindAnakByNIK(ctl.DB, req.LogAnakNIK)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonValidationError(c, map[string][]string{
				"log_anak_nik": {"Anak dengan NIK tersebut tidak ditemukan."},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	row := m.LogPengukuranModel{
		LogAnakID:     anak.AnakID,
		LogDiubahPada: time.Now(),
	}
	if req.LogAnakID != nil {
		row.LogAnakID = *req.LogAnakID
	}
	req.ApplyToModel(&row)

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] CreateLogPengukuran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan log pengukuran")
	}
	return helper.JsonCreated(c, "Log pengukuran berhasil ditambahkan", d.FromModel(&row))
}

// PATCH /api/log-pengukuran/:id
// Koreksi administratif; di luar jalur upsert log bersifat immutable.
func (ctl *LogPengukuranController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID log tidak valid")
	}

	var row m.LogPengukuranModel
	if err := ctl.DB.First(&row, "log_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data log tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log pengukuran")
	}

	var req d.LogPengukuranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	anak, err := anakRepo.FindAnakByNIK(ctl.DB, req.LogAnakNIK)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonValidationError(c, map[string][]string{
				"log_anak_nik": {"Anak dengan NIK tersebut tidak ditemukan."},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	row.LogAnakID = anak.AnakID
	if req.LogAnakID != nil {
		row.LogAnakID = *req.LogAnakID
	}
	req.ApplyToModel(&row)

	if err := ctl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] UpdateLogPengukuran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui log pengukuran")
	}
	return helper.JsonUpdated(c, "Log pengukuran berhasil diperbarui", d.FromModel(&row))
}

// DELETE /api/log-pengukuran/:id
func (ctl *LogPengukuranController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID log tidak valid")
	}

	res := ctl.DB.Delete(&m.LogPengukuranModel{}, "log_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeleteLogPengukuran:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus log")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data log tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Log berhasil dihapus", nil)
}

// DELETE /api/log-pengukuran/nik/:nik — hapus semua log milik NIK
func (ctl *LogPengukuranController) DeleteByNIK(c *fiber.Ctx) error {
	nik := strings.TrimSpace(c.Params("nik"))

	res := ctl.DB.Delete(&m.LogPengukuranModel{}, "log_anak_nik = ?", nik)
	if res.Error != nil {
		log.Println("[ERROR] DeleteLogByNIK:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus log")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada log untuk NIK tersebut")
	}
	return helper.JsonDeleted(c, fmt.Sprintf("Berhasil menghapus %d log pengukuran", res.RowsAffected), fiber.Map{
		"deleted": res.RowsAffected,
	})
}
