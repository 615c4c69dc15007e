package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"posyanduku_backend/internals/constants"
	userController "posyanduku_backend/internals/features/users/user/controller"
	authMiddleware "posyanduku_backend/internals/middlewares/auth"
)

// UserRoutes: manajemen akun hanya untuk admin
func UserRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := userController.NewUserController(db, v)

	group := api.Group("/users", authMiddleware.RequireRoles(constants.RoleAdmin))
	group.Get("/", ctl.List)
	group.Post("/", ctl.Create)
	group.Get("/:id", ctl.Show)
	group.Put("/:id", ctl.Update)
	group.Delete("/:id", ctl.Delete)
}
