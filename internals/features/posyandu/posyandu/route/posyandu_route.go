package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	posyanduController "posyanduku_backend/internals/features/posyandu/posyandu/controller"
)

func PosyanduRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := posyanduController.NewPosyanduController(db, v)

	group := api.Group("/posyandu")
	group.Get("/", ctl.List)
	group.Post("/", ctl.Create)
	group.Get("/:id", ctl.Show)
	group.Put("/:id", ctl.Update)
	group.Delete("/:id", ctl.Delete)
}
