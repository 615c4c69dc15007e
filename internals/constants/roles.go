package constants

// Role pengguna aplikasi posyandu
const (
	RoleAdmin = "admin"
	RoleKader = "kader"
)

var AllowedRoles = []string{RoleAdmin, RoleKader}
