package domain

import (
	"strings"
	"time"
)

// ClaimResourceSeparator separates the resource name from the access level
// in a claim value, e.g. "Booking:read".
const ClaimResourceSeparator = ":"

// Role groups claims and is assigned to staff users.
type Role struct {
	ID        int64     `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Lifecycle
}

// RoleClaim grants a permission to a role. Claims are hard-deleted and rebuilt
// from their audit snapshot on restore.
type RoleClaim struct {
	ID         int64  `db:"id"          json:"id"`
	RoleID     int64  `db:"role_id"     json:"role_id"`
	ClaimType  string `db:"claim_type"  json:"claim_type"`
	ClaimValue string `db:"claim_value" json:"claim_value"`
}

// Resource returns the resource segment of the claim value.
func (c RoleClaim) Resource() string {
	return ClaimResource(c.ClaimValue)
}

// ClaimResource returns the segment of value before the first separator.
func ClaimResource(value string) string {
	resource, _, _ := strings.Cut(value, ClaimResourceSeparator)
	return resource
}

// FindResourceConflict returns the first claim in existing that has the same
// claim type as candidate and whose value mentions candidate's resource.
func FindResourceConflict(existing []RoleClaim, candidate RoleClaim) (RoleClaim, bool) {
	resource := candidate.Resource()
	if resource == "" {
		return RoleClaim{}, false
	}
	for _, c := range existing {
		if c.ClaimType == candidate.ClaimType && strings.Contains(c.ClaimValue, resource) {
			return c, true
		}
	}
	return RoleClaim{}, false
}
