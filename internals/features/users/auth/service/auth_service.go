package service

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"posyanduku_backend/internals/configs"
	authRepo "posyanduku_backend/internals/features/users/auth/repository"
	userDTO "posyanduku_backend/internals/features/users/user/dto"
	helper "posyanduku_backend/internals/helpers"
)

/* ==========================
   Const & Helpers
========================== */

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

/* ==========================
   LOGIN
========================== */

// POST /api/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.UserName = strings.TrimSpace(input.UserName)
	if input.UserName == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username dan password wajib diisi")
	}

	user, err := authRepo.FindUserByUsername(db, input.UserName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau Password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau Password salah")
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return err
	}

	now := nowUTC()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	setAuthCookie(c, accessToken, now)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": accessToken,
		"user":         userDTO.FromModel(user),
	})
}

func setAuthCookie(c *fiber.Ctx, accessToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
}

/* ==========================
   LOGOUT
========================== */

// POST /api/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Ambil raw access token (cookie/Authorization)
	accessToken := rawAccessToken(c)

	// Blacklist access token (idempotent)
	if accessToken != "" {
		ttl := resolveBlacklistTTL(accessToken)
		if err := authRepo.BlacklistToken(db, accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookie (idempotent)")
	}

	// Hapus cookie
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  nowUTC().Add(-time.Hour),
		MaxAge:   -1,
	})

	return helper.JsonOK(c, "Logout successful", nil)
}

func rawAccessToken(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if fields := strings.Fields(authHeader); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1]
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// resolveBlacklistTTL: token masuk blacklist hanya sampai lewat exp-nya,
// plus margin kecil untuk clock skew.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret := strings.TrimSpace(configs.JWTSecret)
	if jwtSecret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}
