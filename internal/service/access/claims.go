package access

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// AddClaim grants a claim to a live role. A role may hold only one claim of a
// given type per resource; a second one is rejected with domain.ErrConflict.
func (s *Service) AddClaim(ctx context.Context, input AddClaimInput) (domain.RoleClaim, error) {
	if err := input.Validate(); err != nil {
		return domain.RoleClaim{}, err
	}
	candidate := input.claim()

	var created domain.RoleClaim
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		role, err := s.roles.Lock(txCtx, candidate.RoleID)
		if err != nil {
			return fmt.Errorf("lock role: %w", err)
		}
		if role.IsDeleted() {
			return fmt.Errorf("role %d: %w", role.ID, domain.ErrNotFound)
		}

		existing, err := s.roles.ListClaims(txCtx, role.ID)
		if err != nil {
			return fmt.Errorf("list claims: %w", err)
		}
		if c, ok := domain.FindResourceConflict(existing, candidate); ok {
			return fmt.Errorf("role %d already grants %q via claim %d: %w",
				role.ID, candidate.Resource(), c.ID, domain.ErrConflict)
		}

		created, err = s.roles.CreateClaim(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("create claim: %w", err)
		}

		_, err = s.audit.RecordCreate(txCtx, domain.EntityKindRoleClaim, strconv.FormatInt(created.ID, 10), input.Actor,
			domain.NewClaimPayload(created))
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.RoleClaim{}, err
	}

	s.log.InfoContext(ctx, "claim added",
		slog.Int64("role_id", created.RoleID),
		slog.Int64("claim_id", created.ID),
		slog.String("claim_type", created.ClaimType),
		slog.String("claim_value", created.ClaimValue),
	)
	return created, nil
}

// ListClaims returns the claims of a live role ordered by id.
func (s *Service) ListClaims(ctx context.Context, roleID int64) ([]domain.RoleClaim, error) {
	if roleID <= 0 {
		return nil, domain.NewValidationError("role_id", "required")
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	if role.IsDeleted() {
		return nil, fmt.Errorf("role %d: %w", roleID, domain.ErrNotFound)
	}

	claims, err := s.roles.ListClaims(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	if claims == nil {
		claims = []domain.RoleClaim{}
	}
	return claims, nil
}
