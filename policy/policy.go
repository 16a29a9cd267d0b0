// Package policy decides which chamados a caller may see. It is pure decision
// logic: the output is a filter descriptor that the store applies, never a
// query itself.
package policy

import (
	"errors"

	"helpdesk/models"
)

// ErrForbidden is returned when the caller asked for rows the policy denies
// outright (a usuario requesting another owner's chamados). The request fails
// rather than being silently narrowed.
var ErrForbidden = errors.New("access to another user's chamados is forbidden")

// Identity is the resolved caller: numeric id, role enum and support tier.
// Nivel is meaningful only for suporte; zero means unranked.
type Identity struct {
	UserID uint
	Role   models.Role
	Nivel  int
}

// Filter is the visibility descriptor applied before querying chamados.
type Filter struct {
	// OwnerID restricts rows to a single creator when set.
	OwnerID *uint
	// MinPrioridade keeps rows whose prioridade value is >= the threshold.
	// Prioridade 1 is most urgent, so a higher nivel widens the band toward
	// low-urgency tickets. That reads inverted, but it is the shipped
	// behavior and callers depend on it; keep as-is.
	MinPrioridade *int
}

// ScopeFilter builds the row filter for a caller, optionally narrowed to a
// requested owner. Precedence:
//
//  1. usuario: owner is forced to the caller; a different requested owner
//     fails with ErrForbidden.
//  2. suporte with nivel > 0: prioridade >= nivel; a requested owner is
//     applied on top.
//  3. admin: no forced owner; a requested owner is applied as-is.
//  4. unknown role, or suporte without a nivel: no priority filter.
func ScopeFilter(id Identity, requestedOwner *uint) (Filter, error) {
	var f Filter

	switch id.Role {
	case models.RoleUsuario:
		if requestedOwner != nil && *requestedOwner != id.UserID {
			return Filter{}, ErrForbidden
		}
		owner := id.UserID
		f.OwnerID = &owner
	case models.RoleSuporte:
		if id.Nivel > 0 {
			nivel := id.Nivel
			f.MinPrioridade = &nivel
		}
		if requestedOwner != nil {
			owner := *requestedOwner
			f.OwnerID = &owner
		}
	default:
		// admin and unrecognized roles: no forced narrowing
		if requestedOwner != nil {
			owner := *requestedOwner
			f.OwnerID = &owner
		}
	}

	return f, nil
}
