package domain

import (
	"time"

	"github.com/google/uuid"
)

// Voucher is a purchased, redeemable entitlement owned by a customer.
type Voucher struct {
	ID            int64         `db:"id"              json:"id"`
	VoucherTypeID int64         `db:"voucher_type_id" json:"voucher_type_id"`
	CustomerID    uuid.UUID     `db:"customer_id"     json:"customer_id"`
	Code          string        `db:"code"            json:"code"`
	Status        VoucherStatus `db:"status"          json:"status"`
	ExpiresAt     time.Time     `db:"expires_at"      json:"expires_at"`
	CreatedAt     time.Time     `db:"created_at"      json:"created_at"`
	Lifecycle
}

// IsRedeemable reports whether the voucher can back a new booking at now.
func (v Voucher) IsRedeemable(now time.Time) bool {
	return !v.Deleted && v.Status == VoucherStatusActive && v.ExpiresAt.After(now)
}

// ExpiredDateExtension records a change to a voucher's expiry.
type ExpiredDateExtension struct {
	ID                int64      `db:"id"                  json:"id"`
	VoucherID         int64      `db:"voucher_id"          json:"voucher_id"`
	PreviousExpiresAt time.Time  `db:"previous_expires_at" json:"previous_expires_at"`
	NewExpiresAt      time.Time  `db:"new_expires_at"      json:"new_expires_at"`
	Reason            string     `db:"reason"              json:"reason"`
	CreatedBy         *uuid.UUID `db:"created_by"          json:"created_by,omitempty"`
	CreatedAt         time.Time  `db:"created_at"          json:"created_at"`
	Lifecycle
}
