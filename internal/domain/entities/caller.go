package entities

import "strings"

type CallerRole string

const (
	CallerRoleClient CallerRole = "client"
	CallerRoleStaff  CallerRole = "staff"
)

// Caller is the verified identity every engine operation is scoped to.
// It is supplied by the identity middleware and passed explicitly.
type Caller struct {
	TenantID string     `json:"tenant_id"`
	Email    string     `json:"email"`
	Role     CallerRole `json:"role"`
}

func (c Caller) IsStaff() bool {
	return c.Role == CallerRoleStaff
}

// CanAccess reports whether the caller may see a record belonging to the given
// outfitter and client. Staff see every record of their own outfitter.
func (c Caller) CanAccess(outfitterID, clientEmail string) bool {
	if c.TenantID == "" || c.TenantID != outfitterID {
		return false
	}
	if c.IsStaff() {
		return true
	}
	return c.Email != "" && strings.EqualFold(strings.TrimSpace(c.Email), strings.TrimSpace(clientEmail))
}
