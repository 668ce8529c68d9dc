package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer of vouchers and owner of bookings.
type Customer struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	FullName  string    `db:"full_name"  json:"full_name"`
	Email     string    `db:"email"      json:"email"`
	Phone     *string   `db:"phone"      json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Lifecycle
}

// User is a staff account. Credentials live with the identity provider.
type User struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Email     string    `db:"email"      json:"email"`
	FullName  string    `db:"full_name"  json:"full_name"`
	RoleID    *int64    `db:"role_id"    json:"role_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Lifecycle
}
