package lifecycle

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// SoftDeleteInput identifies the entity to delete and who is deleting it.
type SoftDeleteInput struct {
	Kind  domain.EntityKind
	ID    string
	Actor *uuid.UUID
}

// Validate checks all fields and collects all errors. An unknown kind is
// reported by SoftDelete as ErrUnknownEntityKind, not here.
func (i SoftDeleteInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind == "" {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "required"})
	}
	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RestoreInput identifies the DELETE audit record to reverse.
type RestoreInput struct {
	AuditID int64
	Actor   *uuid.UUID
}

// Validate checks all fields.
func (i RestoreInput) Validate() error {
	if i.AuditID <= 0 {
		return domain.NewValidationError("audit_id", "must be positive")
	}
	return nil
}
