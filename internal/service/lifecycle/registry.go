package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// kindHandler implements delete and restore for one entity kind.
type kindHandler interface {
	softDelete(ctx context.Context, rawKey string) (deleted, error)
	restore(ctx context.Context, rec domain.AuditRecord) (restored, error)
}

type deleted struct {
	primaryKey string
	payload    *domain.AuditPayload
}

type restored struct {
	alreadyActive bool
	newClaimID    *int64
}

// ---------------------------------------------------------------------------
// Flag-based kinds
// ---------------------------------------------------------------------------

type flagHandler struct {
	kind   domain.EntityKind
	repo   entityRepo
	guard  guardFunc
	strict bool
}

func (h *flagHandler) softDelete(ctx context.Context, rawKey string) (deleted, error) {
	key, err := domain.ParseEntityKey(h.kind, rawKey)
	if err != nil {
		return deleted{}, domain.NewValidationError("id", err.Error())
	}

	lc, err := h.repo.Get(ctx, h.kind, key)
	if err != nil {
		return deleted{}, fmt.Errorf("get %s %s: %w", h.kind, key, err)
	}
	if lc.IsDeleted() {
		return deleted{}, fmt.Errorf("%s %s is already deleted: %w", h.kind, key, domain.ErrNotFound)
	}

	if h.guard != nil {
		reason, err := h.guard(ctx, key)
		if err != nil {
			return deleted{}, fmt.Errorf("check %s %s guard: %w", h.kind, key, err)
		}
		if reason != "" {
			return deleted{}, &domain.GuardError{Kind: h.kind, Key: key.String(), Reason: reason}
		}
	}

	changed, err := h.repo.SetDeleted(ctx, h.kind, key, true)
	if err != nil {
		return deleted{}, fmt.Errorf("delete %s %s: %w", h.kind, key, err)
	}
	if !changed {
		return deleted{}, fmt.Errorf("%s %s is already deleted: %w", h.kind, key, domain.ErrNotFound)
	}

	return deleted{primaryKey: key.String()}, nil
}

func (h *flagHandler) restore(ctx context.Context, rec domain.AuditRecord) (restored, error) {
	key, err := domain.ParseEntityKey(h.kind, rec.PrimaryKey)
	if err != nil {
		return restored{}, fmt.Errorf("audit record %d: %w: %v", rec.ID, domain.ErrCorruptAuditRecord, err)
	}

	lc, err := h.repo.Get(ctx, h.kind, key)
	if errors.Is(err, domain.ErrNotFound) {
		return restored{}, fmt.Errorf("%s %s: %w", h.kind, key, domain.ErrEntityGone)
	}
	if err != nil {
		return restored{}, fmt.Errorf("get %s %s: %w", h.kind, key, err)
	}

	if !lc.IsDeleted() {
		if h.strict {
			return restored{}, fmt.Errorf("%s %s is already active: %w", h.kind, key, domain.ErrInvalidState)
		}
		return restored{alreadyActive: true}, nil
	}

	changed, err := h.repo.SetDeleted(ctx, h.kind, key, false)
	if err != nil {
		return restored{}, fmt.Errorf("restore %s %s: %w", h.kind, key, err)
	}
	return restored{alreadyActive: !changed}, nil
}

// ---------------------------------------------------------------------------
// RoleClaim
// ---------------------------------------------------------------------------

// claimHandler hard-deletes claims and rebuilds them from the audit snapshot.
type claimHandler struct {
	claims claimRepo
}

func (h *claimHandler) softDelete(ctx context.Context, rawKey string) (deleted, error) {
	key, err := domain.ParseEntityKey(domain.EntityKindRoleClaim, rawKey)
	if err != nil {
		return deleted{}, domain.NewValidationError("id", err.Error())
	}

	claim, err := h.claims.DeleteClaim(ctx, key.ID)
	if err != nil {
		return deleted{}, fmt.Errorf("delete role claim %s: %w", key, err)
	}

	return deleted{primaryKey: key.String(), payload: domain.NewClaimPayload(claim)}, nil
}

func (h *claimHandler) restore(ctx context.Context, rec domain.AuditRecord) (restored, error) {
	if rec.Payload == nil || !rec.Payload.Claim.Complete() {
		return restored{}, fmt.Errorf("audit record %d: %w: claim snapshot missing", rec.ID, domain.ErrCorruptAuditRecord)
	}
	snap := rec.Payload.Claim

	role, err := h.claims.Lock(ctx, snap.RoleID)
	if errors.Is(err, domain.ErrNotFound) {
		return restored{}, fmt.Errorf("role %d: %w", snap.RoleID, domain.ErrEntityGone)
	}
	if err != nil {
		return restored{}, fmt.Errorf("get role %d: %w", snap.RoleID, err)
	}
	if role.IsDeleted() {
		return restored{}, fmt.Errorf("role %d is deleted: %w", snap.RoleID, domain.ErrEntityGone)
	}

	existing, err := h.claims.ListClaims(ctx, role.ID)
	if err != nil {
		return restored{}, fmt.Errorf("list claims of role %d: %w", role.ID, err)
	}

	candidate := domain.RoleClaim{RoleID: role.ID, ClaimType: snap.ClaimType, ClaimValue: snap.ClaimValue}
	if dup, found := domain.FindResourceConflict(existing, candidate); found {
		return restored{}, fmt.Errorf("role %d already grants %s %q (claim %d): %w",
			role.ID, dup.ClaimType, dup.ClaimValue, dup.ID, domain.ErrConflict)
	}

	created, err := h.claims.CreateClaim(ctx, candidate)
	if err != nil {
		return restored{}, fmt.Errorf("recreate role claim: %w", err)
	}

	return restored{newClaimID: &created.ID}, nil
}
