package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "posyanduku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctl.DB, c)
}

// POST /api/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctl.DB, c)
}
