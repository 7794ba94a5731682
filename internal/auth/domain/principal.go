// Package domain defines the authenticated principal of a request.
package domain

import "strings"

// Roles forwarded by the API gateway in X-User-Role.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Principal is the caller identity resolved by the API gateway.
type Principal struct {
	UserID int64
	Role   string
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return strings.EqualFold(p.Role, RoleAdmin)
}
