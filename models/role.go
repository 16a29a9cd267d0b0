package models

import "strings"

// Role is the closed set of account roles. The raw cargo string stored on a
// user row is parsed into a Role exactly once, at identity resolution; all
// downstream logic switches on the enum.
type Role string

const (
	RoleUsuario Role = "usuario" // ticket submitter
	RoleSuporte Role = "suporte" // support agent, ranked by Nivel
	RoleAdmin   Role = "admin"
)

// ParseRole normalizes a cargo string into a Role. Unknown values map to the
// empty Role, which the visibility policy treats as unrestricted-by-priority.
func ParseRole(cargo string) Role {
	switch strings.ToLower(strings.TrimSpace(cargo)) {
	case "usuario":
		return RoleUsuario
	case "suporte":
		return RoleSuporte
	case "admin":
		return RoleAdmin
	default:
		return Role("")
	}
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUsuario || r == RoleSuporte || r == RoleAdmin
}
