package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "posyanduku_backend/internals/features/users/auth/controller"
	rateLimiter "posyanduku_backend/internals/middlewares"
)

// AuthRoutes: login publik (dibatasi LoginRateLimiter), logout di belakang
// group terproteksi yang dipasang caller.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	app.Post("/api/login", rateLimiter.LoginRateLimiter(), ctl.Login)
}

func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	api.Post("/logout", ctl.Logout)
}
