// Package authz holds the role-based access policy. The role checks are pure
// functions so every transport enforces the same rules; only the scoped
// patient listing needs a link store lookup.
package authz

import (
	"caretrack-server/internal/models"
)

// LinkReader answers which patients a caregiver is linked to.
type LinkReader interface {
	PatientIDsLinkedTo(userID string) ([]string, error)
}

// CanManageUsers reports whether the role may create, update or delete users.
func CanManageUsers(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanManageLinks reports whether the role may create, list or delete patient
// links. Link management is admin-exclusive.
func CanManageLinks(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanWriteClinical reports whether the role may create or delete vitals and
// doctor comments.
func CanWriteClinical(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleStaff
}

// CanViewClinical reports whether the role may read vitals and doctor
// comments.
func CanViewClinical(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleStaff || role == models.RoleFamily
}

// CanManageMedicines reports whether the role may modify the medicine
// inventory.
func CanManageMedicines(role models.Role) bool {
	return role == models.RoleAdmin
}

// CanManageInquiries reports whether the role may create or delete inquiries.
func CanManageInquiries(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleFamily
}

// Policy scopes user listings by caller. Admins see everyone; staff and
// family see exactly the patients they are linked to.
type Policy struct {
	links LinkReader
}

// NewPolicy creates a new Policy.
func NewPolicy(links LinkReader) *Policy {
	return &Policy{links: links}
}

// VisiblePatientIDs returns the distinct patient ids the caller is linked to
// as a caregiver. Callers with no links see an empty set, not an error.
func (p *Policy) VisiblePatientIDs(callerID string) ([]string, error) {
	return p.links.PatientIDsLinkedTo(callerID)
}
