package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	anakRepo "posyanduku_backend/internals/features/posyandu/anak/repository"
	d "posyanduku_backend/internals/features/posyandu/pengukuran/dto"
	m "posyanduku_backend/internals/features/posyandu/pengukuran/model"
	repo "posyanduku_backend/internals/features/posyandu/pengukuran/repository"
	svc "posyanduku_backend/internals/features/posyandu/pengukuran/service"
	helper "posyanduku_backend/internals/helpers"
)

type PengukuranController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.PengukuranService
}

func NewPengukuranController(db *gorm.DB, v *validator.Validate) *PengukuranController {
	return &PengukuranController{
		DB:       db,
		Validate: v,
		Service:  svc.NewPengukuranService(repo.NewGormStore(db)),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, errors.New(name + " wajib diisi")
	}
	return uuid.Parse(idStr)
}

// mapServiceError menerjemahkan error service ke response envelope
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrAnakNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Anak tidak ditemukan")
	case errors.Is(err, svc.ErrPengukuranNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Data pengukuran tidak ditemukan")
	case errors.Is(err, svc.ErrPosyanduNotFound):
		return helper.JsonValidationError(c, map[string][]string{
			"pengukuran_posyandu_id": {"Posyandu tidak ditemukan."},
		})
	case errors.Is(err, svc.ErrConflict):
		return helper.JsonError(c, fiber.StatusConflict, "Pengukuran anak sedang diubah proses lain, coba lagi")
	default:
		log.Println("[ERROR] Pengukuran service:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pengukuran")
	}
}

func (ctl *PengukuranController) parseInput(c *fiber.Ctx) (*d.PengukuranInput, error) {
	var in d.PengukuranInput
	if err := c.BodyParser(&in); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	in.Normalize()
	if err := ctl.Validate.Struct(&in); err != nil {
		return nil, helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	return &in, nil
}

// GET /api/anak-pengukuran
// Optional: ?anak_id=<uuid>
func (ctl *PengukuranController) List(c *fiber.Ctx) error {
	tx := ctl.DB.Preload("Posyandu").Order("pengukuran_tanggal_ukur DESC")

	if anakIDStr := strings.TrimSpace(c.Query("anak_id")); anakIDStr != "" {
		anakID, err := uuid.Parse(anakIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "anak_id tidak valid")
		}
		tx = tx.Where("pengukuran_anak_id = ?", anakID)
	}

	var rows []m.PengukuranModel
	if err := tx.Find(&rows).Error; err != nil {
		log.Println("[ERROR] ListPengukuran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengukuran")
	}
	return helper.JsonOK(c, "Data Pengukuran Anak", d.FromModelList(rows))
}

// GET /api/anak-pengukuran/:id
func (ctl *PengukuranController) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengukuran tidak valid")
	}

	var row m.PengukuranModel
	if err := ctl.DB.Preload("Posyandu").First(&row, "pengukuran_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data pengukuran tidak ditemukan")
		}
		log.Println("[ERROR] ShowPengukuran:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengukuran")
	}
	return helper.JsonOK(c, "Detail Pengukuran Anak", d.FromModel(&row))
}

// GET /api/anak-pengukuran/by-nik/:nik
func (ctl *PengukuranController) ShowByNIK(c *fiber.Ctx) error {
	anak, err := anakRepo.FindAnakByNIK(ctl.DB.Preload("Posyandu"), c.Params("nik"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	var row m.PengukuranModel
	if err := ctl.DB.Preload("Posyandu").First(&row, "pengukuran_anak_id = ?", anak.AnakID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data pengukuran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengukuran")
	}
	return helper.JsonOK(c, "Detail Pengukuran Anak", d.FromModelWithAnak(&row, anak))
}

// POST /api/anak-pengukuran
// Upsert by anak_id: create bila anak belum punya pengukuran live,
// update+arsip bila sudah. Disposisi dikembalikan eksplisit.
func (ctl *PengukuranController) Upsert(c *fiber.Ctx) error {
	in, err := ctl.parseInput(c)
	if err != nil {
		return err
	}
	if in.PengukuranAnakID == nil {
		return helper.JsonValidationError(c, map[string][]string{
			"pengukuran_anak_id": {"pengukuran_anak_id wajib diisi."},
		})
	}

	anak, err := ctl.Service.ResolveAnak(*in.PengukuranAnakID)
	if err != nil {
		return mapServiceError(c, err)
	}

	res, err := ctl.Service.Upsert(c.UserContext(), anak, in)
	if err != nil {
		return mapServiceError(c, err)
	}

	body := d.UpsertResponse{Disposition: res.Disposition, Pengukuran: d.FromModel(res.Pengukuran)}
	if res.Disposition == d.DispositionCreated {
		return helper.JsonCreated(c, "Pengukuran berhasil ditambahkan", body)
	}
	return helper.JsonUpdated(c, "Pengukuran berhasil diperbarui (log tersimpan)", body)
}

// PUT /api/anak-pengukuran/by-nik/:nik
// Upsert dengan resolve anak lewat NIK; anak harus sudah terdaftar.
// Sengaja resolve anak dulu baru validasi body: NIK yang tidak dikenal
// selalu 404, apa pun isi payload-nya (konsisten dengan endpoint by-nik lain).
func (ctl *PengukuranController) UpsertByNIK(c *fiber.Ctx) error {
	anak, err := anakRepo.FindAnakByNIK(ctl.DB, c.Params("nik"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	in, err := ctl.parseInput(c)
	if err != nil {
		return err
	}

	res, err := ctl.Service.Upsert(c.UserContext(), anak, in)
	if err != nil {
		return mapServiceError(c, err)
	}

	body := d.UpsertResponse{Disposition: res.Disposition, Pengukuran: d.FromModel(res.Pengukuran)}
	if res.Disposition == d.DispositionCreated {
		return helper.JsonCreated(c, "Pengukuran berhasil ditambahkan", body)
	}
	return helper.JsonUpdated(c, "Pengukuran berhasil diperbarui (log tersimpan)", body)
}

// PUT|PATCH /api/anak-pengukuran/:id
// Update manual by id baris; tetap arsip dulu sebelum timpa.
func (ctl *PengukuranController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengukuran tidak valid")
	}

	in, err := ctl.parseInput(c)
	if err != nil {
		return err
	}

	row, err := ctl.Service.UpdateByID(c.UserContext(), id, in)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Pengukuran berhasil diperbarui (log tersimpan)", d.FromModel(row))
}

// DELETE /api/anak-pengukuran/:id
func (ctl *PengukuranController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengukuran tidak valid")
	}

	res := ctl.DB.Delete(&m.PengukuranModel{}, "pengukuran_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeletePengukuran:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengukuran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data pengukuran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pengukuran berhasil dihapus", nil)
}

// DELETE /api/anak-pengukuran/by-nik/:nik
// Hapus semua pengukuran milik anak; response memuat jumlah baris.
func (ctl *PengukuranController) DeleteByNIK(c *fiber.Ctx) error {
	anak, err := anakRepo.FindAnakByNIK(ctl.DB, c.Params("nik"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	count, err := ctl.Service.DeleteAllForAnak(c.UserContext(), anak.AnakID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, fmt.Sprintf("Berhasil menghapus %d data pengukuran", count), fiber.Map{
		"deleted": count,
	})
}
