package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "posyanduku_backend/internals/features/posyandu/posyandu/dto"
	m "posyanduku_backend/internals/features/posyandu/posyandu/model"
	helper "posyanduku_backend/internals/helpers"
)

type PosyanduController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPosyanduController(db *gorm.DB, v *validator.Validate) *PosyanduController {
	return &PosyanduController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, errors.New(name + " wajib diisi")
	}
	return uuid.Parse(idStr)
}

// GET /api/posyandu
// Optional: ?desa=Ngaglik untuk filter per desa
func (ctl *PosyanduController) List(c *fiber.Ctx) error {
	tx := ctl.DB.Order("posyandu_desa ASC, posyandu_nama ASC")
	if desa := strings.TrimSpace(c.Query("desa")); desa != "" {
		tx = tx.Where("posyandu_desa ILIKE ?", desa)
	}

	var rows []m.PosyanduModel
	if err := tx.Find(&rows).Error; err != nil {
		log.Println("[ERROR] ListPosyandu:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data posyandu")
	}
	return helper.JsonOK(c, "Data Posyandu", d.FromModelList(rows))
}

// GET /api/posyandu/:id
func (ctl *PosyanduController) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID posyandu tidak valid")
	}

	var row m.PosyanduModel
	if err := ctl.DB.First(&row, "posyandu_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data posyandu tidak ditemukan")
		}
		log.Println("[ERROR] ShowPosyandu:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data posyandu")
	}
	return helper.JsonOK(c, "Detail Posyandu", d.FromModel(&row))
}

// POST /api/posyandu
func (ctl *PosyanduController) Create(c *fiber.Ctx) error {
	var req d.CreatePosyanduRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	row := req.ToModel()
	if err := ctl.DB.Create(row).Error; err != nil {
		log.Println("[ERROR] CreatePosyandu:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan posyandu")
	}
	return helper.JsonCreated(c, "Data Posyandu berhasil ditambahkan", d.FromModel(row))
}

// PUT /api/posyandu/:id
func (ctl *PosyanduController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID posyandu tidak valid")
	}

	var row m.PosyanduModel
	if err := ctl.DB.First(&row, "posyandu_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data posyandu tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data posyandu")
	}

	var req d.UpdatePosyanduRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	row.PosyanduDesa = req.PosyanduDesa
	row.PosyanduNama = req.PosyanduNama
	if err := ctl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] UpdatePosyandu:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui posyandu")
	}
	return helper.JsonUpdated(c, "Data Posyandu berhasil diperbarui", d.FromModel(&row))
}

// DELETE /api/posyandu/:id
// Referensi anak/pengukuran di-null-kan oleh FK ON DELETE SET NULL.
func (ctl *PosyanduController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID posyandu tidak valid")
	}

	res := ctl.DB.Delete(&m.PosyanduModel{}, "posyandu_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeletePosyandu:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus posyandu")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data posyandu tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data Posyandu berhasil dihapus", nil)
}
