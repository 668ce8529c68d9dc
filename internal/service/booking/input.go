package booking

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// CreateInput holds the parameters for booking a service package.
type CreateInput struct {
	CustomerID       uuid.UUID
	ServicePackageID int64
	VoucherID        *int64
	Actor            *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}
	if i.ServicePackageID <= 0 {
		errs = append(errs, domain.FieldError{Field: "service_package_id", Message: "required"})
	}
	if i.VoucherID != nil && *i.VoucherID <= 0 {
		errs = append(errs, domain.FieldError{Field: "voucher_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionInput identifies a booking whose status changes.
type TransitionInput struct {
	BookingID int64
	Actor     *uuid.UUID
}

// Validate checks all fields.
func (i TransitionInput) Validate() error {
	if i.BookingID <= 0 {
		return domain.NewValidationError("booking_id", "required")
	}
	return nil
}
