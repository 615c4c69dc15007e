package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	d "posyanduku_backend/internals/features/users/user/dto"
	"posyanduku_backend/internals/features/users/user/model"
	helper "posyanduku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

// GET /api/users
func (ctl *UserController) List(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctl.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		log.Println("[ERROR] ListUsers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengguna")
	}
	return helper.JsonOK(c, "List Data User", d.FromModelList(users))
}

// GET /api/users/:id
func (ctl *UserController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "Detail User", d.FromModel(&user))
}

// POST /api/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	u := req.ToModel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	u.Password = string(hashed)

	if err := ctl.DB.Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		log.Println("[ERROR] CreateUser:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "User created successfully", d.FromModel(u))
}

// PUT /api/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	// Keunikan username mengecualikan baris milik user ini sendiri
	var count int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("user_name = ? AND id <> ?", req.UserName, user.ID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
	}

	user.UserName = req.UserName
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		user.Password = string(hashed)
	}

	if err := ctl.DB.Save(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		log.Println("[ERROR] UpdateUser:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}
	return helper.JsonUpdated(c, "User updated successfully", d.FromModel(&user))
}

// DELETE /api/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	res := ctl.DB.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] DeleteUser:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User deleted successfully", nil)
}
