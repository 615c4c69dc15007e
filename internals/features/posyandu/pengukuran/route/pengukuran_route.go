package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pengukuranController "posyanduku_backend/internals/features/posyandu/pengukuran/controller"
)

func PengukuranRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := pengukuranController.NewPengukuranController(db, v)

	group := api.Group("/anak-pengukuran")
	group.Get("/", ctl.List)
	group.Post("/", ctl.Upsert)
	// Route by-nik harus terdaftar sebelum /:id
	group.Get("/by-nik/:nik", ctl.ShowByNIK)
	group.Put("/by-nik/:nik", ctl.UpsertByNIK)
	group.Delete("/by-nik/:nik", ctl.DeleteByNIK)
	group.Get("/:id", ctl.Show)
	group.Put("/:id", ctl.Update)
	group.Patch("/:id", ctl.Update)
	group.Delete("/:id", ctl.Delete)
}
