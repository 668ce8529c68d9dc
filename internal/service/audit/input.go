package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// ListInput holds the filters of an audit history query. Empty fields do not
// filter.
type ListInput struct {
	EntityKind string
	Kind       string
	PrimaryKey string
	CreatedBy  *uuid.UUID
	From       *time.Time
	To         *time.Time
	Restored   *bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.EntityKind != "" && !domain.EntityKind(i.EntityKind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_kind", Message: "unknown entity kind"})
	}
	if i.Kind != "" && !domain.AuditKind(i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be CREATE, UPDATE, DELETE or NONE"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.AuditFilter {
	f := domain.AuditFilter{
		CreatedBy: i.CreatedBy,
		From:      i.From,
		To:        i.To,
		Restored:  i.Restored,
		Limit:     clampLimit(i.Limit),
		Offset:    i.Offset,
	}
	if i.EntityKind != "" {
		k := domain.EntityKind(i.EntityKind)
		f.EntityKind = &k
	}
	if i.Kind != "" {
		k := domain.AuditKind(i.Kind)
		f.Kind = &k
	}
	if i.PrimaryKey != "" {
		pk := i.PrimaryKey
		f.PrimaryKey = &pk
	}
	return f
}

// clampLimit defaults 0 to defaultLimit and caps at maxLimit.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
