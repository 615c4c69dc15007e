package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	logController "posyanduku_backend/internals/features/posyandu/log_pengukuran/controller"
)

func LogPengukuranRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := logController.NewLogPengukuranController(db, v)

	group := api.Group("/log-pengukuran")
	group.Get("/", ctl.List)
	group.Post("/", ctl.Create)
	// Route spesifik harus terdaftar sebelum /:id
	group.Get("/nik/:nik", ctl.ByNIK)
	group.Delete("/nik/:nik", ctl.DeleteByNIK)
	group.Get("/anak/:anak_id", ctl.ByAnakID)
	group.Get("/:id", ctl.Show)
	group.Patch("/:id", ctl.Update)
	group.Delete("/:id", ctl.Delete)
}
