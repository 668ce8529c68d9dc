package voucher

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// IssueInput holds the parameters for issuing a voucher to a customer.
type IssueInput struct {
	VoucherTypeID int64
	CustomerID    uuid.UUID
	Actor         *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i IssueInput) Validate() error {
	var errs []domain.FieldError

	if i.VoucherTypeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "voucher_type_id", Message: "required"})
	}
	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExtendInput holds the parameters for extending a voucher's expiry.
type ExtendInput struct {
	VoucherID int64
	Days      int
	Reason    string
	Actor     *uuid.UUID
}

func (i ExtendInput) validate(maxDays int) error {
	var errs []domain.FieldError

	if i.VoucherID <= 0 {
		errs = append(errs, domain.FieldError{Field: "voucher_id", Message: "required"})
	}
	if i.Days <= 0 {
		errs = append(errs, domain.FieldError{Field: "days", Message: "must be positive"})
	}
	if i.Days > maxDays {
		errs = append(errs, domain.FieldError{Field: "days", Message: "exceeds the maximum extension"})
	}
	if len(strings.TrimSpace(i.Reason)) > 500 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
