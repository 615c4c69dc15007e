// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	anakRoute "posyanduku_backend/internals/features/posyandu/anak/route"
	logRoute "posyanduku_backend/internals/features/posyandu/log_pengukuran/route"
	pengukuranRoute "posyanduku_backend/internals/features/posyandu/pengukuran/route"
	posyanduRoute "posyanduku_backend/internals/features/posyandu/posyandu/route"
	authRoute "posyanduku_backend/internals/features/users/auth/route"
	userRoute "posyanduku_backend/internals/features/users/user/route"
	authMiddleware "posyanduku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Setting up protected /api group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(api, db)
	userRoute.UserRoutes(api, db, v)
	posyanduRoute.PosyanduRoutes(api, db, v)
	anakRoute.AnakRoutes(api, db, v)
	pengukuranRoute.PengukuranRoutes(api, db, v)
	logRoute.LogPengukuranRoutes(api, db, v)
}
