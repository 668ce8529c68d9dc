package access

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

const (
	maxRoleName   = 100
	maxClaimType  = 100
	maxClaimValue = 200
)

// CreateRoleInput holds the parameters for creating a role.
type CreateRoleInput struct {
	Name  string
	Actor *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateRoleInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxRoleName {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddClaimInput holds the parameters for granting a claim to a role.
type AddClaimInput struct {
	RoleID     int64
	ClaimType  string
	ClaimValue string
	Actor      *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddClaimInput) Validate() error {
	var errs []domain.FieldError

	if i.RoleID <= 0 {
		errs = append(errs, domain.FieldError{Field: "role_id", Message: "required"})
	}

	claimType := strings.TrimSpace(i.ClaimType)
	if claimType == "" {
		errs = append(errs, domain.FieldError{Field: "claim_type", Message: "required"})
	}
	if len(claimType) > maxClaimType {
		errs = append(errs, domain.FieldError{Field: "claim_type", Message: "max 100 characters"})
	}

	value := strings.TrimSpace(i.ClaimValue)
	switch {
	case value == "":
		errs = append(errs, domain.FieldError{Field: "claim_value", Message: "required"})
	case domain.ClaimResource(value) == "":
		errs = append(errs, domain.FieldError{Field: "claim_value", Message: "must start with a resource name"})
	case len(value) > maxClaimValue:
		errs = append(errs, domain.FieldError{Field: "claim_value", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AddClaimInput) claim() domain.RoleClaim {
	return domain.RoleClaim{
		RoleID:     i.RoleID,
		ClaimType:  strings.TrimSpace(i.ClaimType),
		ClaimValue: strings.TrimSpace(i.ClaimValue),
	}
}
