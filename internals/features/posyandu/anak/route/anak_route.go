package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	anakController "posyanduku_backend/internals/features/posyandu/anak/controller"
)

func AnakRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := anakController.NewAnakController(db, v)

	group := api.Group("/anak")
	group.Get("/", ctl.List)
	group.Post("/", ctl.Create)
	// Route spesifik (/nik/:nik) harus terdaftar sebelum /:id
	group.Get("/nik/:nik", ctl.ShowByNIK)
	group.Get("/:id", ctl.Show)
	group.Put("/:id", ctl.Update)
	group.Delete("/:id", ctl.Delete)
}
