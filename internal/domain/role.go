package domain

import (
	"slices"
	"time"
)

// Role determines a user's visibility scope over orders and commissions.
type Role string

const (
	// RoleAdmin manages the tenant: users, settings, receivables, archival
	RoleAdmin Role = "admin"

	// RoleManager sees all of the tenant's sales but cannot manage users
	RoleManager Role = "manager"

	// RoleSeller sees only their own sales and commissions
	RoleSeller Role = "seller"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleSeller}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}

// ViewScope is the closed set of visibility variants a caller can have.
// It is resolved once per request instead of branching on roles throughout
// the aggregation code.
type ViewScope int

const (
	// ScopeOwn restricts the caller to rows where they are the seller
	ScopeOwn ViewScope = iota

	// ScopeAll grants visibility over every seller in the tenant
	ScopeAll
)

// ScopeForRoles maps a caller's roles to their view scope. Admins and
// managers see everything; everyone else only their own sales.
func ScopeForRoles(roles []string) ViewScope {
	if HasAnyRole(roles, RoleAdmin, RoleManager) {
		return ScopeAll
	}
	return ScopeOwn
}

// UserRole is the role assignment row: exactly one per user per tenant.
// TenantID is nullable for the same backfill reason as Profile.TenantID.
type UserRole struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;unique" json:"user_id"`
	Role      Role      `gorm:"type:text;not null" json:"role"`
	TenantID  *string   `gorm:"type:uuid" json:"tenant_id"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
