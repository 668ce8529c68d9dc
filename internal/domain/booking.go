package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking reserves a service package for a customer, optionally paid by voucher.
type Booking struct {
	ID               int64           `db:"id"                 json:"id"`
	CustomerID       uuid.UUID       `db:"customer_id"        json:"customer_id"`
	ServicePackageID int64           `db:"service_package_id" json:"service_package_id"`
	VoucherID        *int64          `db:"voucher_id"         json:"voucher_id,omitempty"`
	Status           BookingStatus   `db:"status"             json:"status"`
	Price            decimal.Decimal `db:"price"              json:"price"`
	BookedAt         time.Time       `db:"booked_at"          json:"booked_at"`
	CreatedAt        time.Time       `db:"created_at"         json:"created_at"`
	Lifecycle
}
