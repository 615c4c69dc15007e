package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "posyanduku_backend/internals/features/posyandu/anak/dto"
	m "posyanduku_backend/internals/features/posyandu/anak/model"
	repo "posyanduku_backend/internals/features/posyandu/anak/repository"
	logModel "posyanduku_backend/internals/features/posyandu/log_pengukuran/model"
	pengukuranModel "posyanduku_backend/internals/features/posyandu/pengukuran/model"
	posyanduModel "posyanduku_backend/internals/features/posyandu/posyandu/model"
	helper "posyanduku_backend/internals/helpers"
)

type AnakController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnakController(db *gorm.DB, v *validator.Validate) *AnakController {
	return &AnakController{DB: db, Validate: v}
}

// Deteksi unique violation Postgres (SQLSTATE 23505) tanpa import driver
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, errors.New(name + " wajib diisi")
	}
	return uuid.Parse(idStr)
}

// ensurePosyanduExists memeriksa referensi posyandu bila diisi
func (ctl *AnakController) ensurePosyanduExists(id *uuid.UUID) (bool, error) {
	if id == nil {
		return true, nil
	}
	var count int64
	if err := ctl.DB.Model(&posyanduModel.PosyanduModel{}).
		Where("posyandu_id = ?", *id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GET /api/anak
// Query:
//
//	search= → typeahead pada NIK / nama anak
//	page= & per_page= → pagination (tanpa page → semua baris)
func (ctl *AnakController) List(c *fiber.Ctx) error {
	tx := ctl.DB.Model(&m.AnakModel{}).Preload("Posyandu").Order("anak_nama ASC")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		tx = tx.Where("anak_nik ILIKE ? OR anak_nama ILIKE ?", like, like)
	}

	// Tanpa parameter page → kembalikan semua (kompatibel dgn typeahead client)
	if strings.TrimSpace(c.Query("page")) == "" {
		var rows []m.AnakModel
		if err := tx.Find(&rows).Error; err != nil {
			log.Println("[ERROR] ListAnak:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
		}
		return helper.JsonOK(c, "Data Semua Anak", d.FromModelList(rows))
	}

	p := helper.ResolvePaging(c, 15, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] CountAnak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	var rows []m.AnakModel
	if err := tx.Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		log.Println("[ERROR] ListAnak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Data Semua Anak", d.FromModelList(rows), &pg)
}

// GET /api/anak/:id
func (ctl *AnakController) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID anak tidak valid")
	}

	var row m.AnakModel
	if err := ctl.DB.Preload("Posyandu").First(&row, "anak_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		log.Println("[ERROR] ShowAnak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}
	return helper.JsonOK(c, "Detail Anak", d.FromModel(&row))
}

// GET /api/anak/nik/:nik
func (ctl *AnakController) ShowByNIK(c *fiber.Ctx) error {
	anak, err := repo.FindAnakByNIK(ctl.DB.Preload("Posyandu"), c.Params("nik"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		log.Println("[ERROR] ShowAnakByNIK:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}
	return helper.JsonOK(c, "Detail Anak", d.FromModel(anak))
}

// POST /api/anak
func (ctl *AnakController) Create(c *fiber.Ctx) error {
	var req d.CreateAnakRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	if ok, err := ctl.ensurePosyanduExists(req.AnakPosyanduID); err != nil {
		log.Println("[ERROR] CreateAnak posyandu check:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa posyandu")
	} else if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"anak_posyandu_id": {"Posyandu tidak ditemukan."},
		})
	}

	if taken, err := repo.NIKTaken(ctl.DB, req.AnakNIK, uuid.Nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa NIK")
	} else if taken {
		return helper.JsonError(c, fiber.StatusConflict, "NIK sudah terdaftar")
	}

	row := req.ToModel()
	if err := ctl.DB.Create(row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIK sudah terdaftar")
		}
		log.Println("[ERROR] CreateAnak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data anak")
	}
	return helper.JsonCreated(c, "Data Anak berhasil ditambahkan", d.FromModel(row))
}

// PUT /api/anak/:id  — full-record replace
func (ctl *AnakController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID anak tidak valid")
	}

	var row m.AnakModel
	if err := ctl.DB.First(&row, "anak_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	var req d.UpdateAnakRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	if ok, err := ctl.ensurePosyanduExists(req.AnakPosyanduID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa posyandu")
	} else if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"anak_posyandu_id": {"Posyandu tidak ditemukan."},
		})
	}

	// Keunikan NIK mengecualikan baris milik record ini sendiri.
	// Catatan: mengganti NIK anak yang sudah punya log pengukuran akan
	// membuat log lama tetap menunjuk NIK lama (denormalisasi snapshot).
	if taken, err := repo.NIKTaken(ctl.DB, req.AnakNIK, row.AnakID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa NIK")
	} else if taken {
		return helper.JsonError(c, fiber.StatusConflict, "NIK sudah terdaftar")
	}

	req.ApplyToModel(&row)
	if err := ctl.DB.Save(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIK sudah terdaftar")
		}
		log.Println("[ERROR] UpdateAnak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data anak")
	}
	return helper.JsonUpdated(c, "Data Anak berhasil diperbarui", d.FromModel(&row))
}

// DELETE /api/anak/:id
// Log & pengukuran milik anak dihapus dalam satu transaksi; FK ON DELETE
// CASCADE di skema tetap jadi pengaman kalau ada jalur hapus lain.
func (ctl *AnakController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID anak tidak valid")
	}

	var affected int64
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&logModel.LogPengukuranModel{}, "log_anak_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&pengukuranModel.PengukuranModel{}, "pengukuran_anak_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&m.AnakModel{}, "anak_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		log.Println("[ERROR] DeleteAnak:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data anak")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data Anak berhasil dihapus", nil)
}
