// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles membatasi akses berdasarkan klaim role di token.
// Dipasang SETELAH AuthMiddleware (mengandalkan Locals "userRole").
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak - role tidak diizinkan")
	}
}
