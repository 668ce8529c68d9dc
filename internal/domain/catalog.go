package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering, e.g. "Spa".
type Service struct {
	ID          int64     `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	Lifecycle
}

// ServicePackage is a priced bundle of a service.
type ServicePackage struct {
	ID        int64           `db:"id"         json:"id"`
	ServiceID int64           `db:"service_id" json:"service_id"`
	Name      string          `db:"name"       json:"name"`
	Price     decimal.Decimal `db:"price"      json:"price"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	Lifecycle
}

// VoucherType describes vouchers redeemable against one service package.
type VoucherType struct {
	ID               int64     `db:"id"                 json:"id"`
	ServicePackageID int64     `db:"service_package_id" json:"service_package_id"`
	Name             string    `db:"name"               json:"name"`
	ValidityDays     int       `db:"validity_days"      json:"validity_days"`
	CreatedAt        time.Time `db:"created_at"         json:"created_at"`
	Lifecycle
}
