package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// RestoreResult describes a successful restore.
type RestoreResult struct {
	Record     domain.AuditRecord `json:"record"`
	Kind       domain.EntityKind  `json:"entity_kind"`
	PrimaryKey string             `json:"primary_key"`
	// AlreadyActive is set when a flag-based entity was not deleted.
	AlreadyActive bool `json:"already_active"`
	// NewClaimID is the id of a rebuilt RoleClaim.
	NewClaimID *int64 `json:"new_claim_id,omitempty"`
}

// Restore reverses the soft delete recorded by a DELETE audit record. It
// writes no audit record of its own; the log row is marked restored.
func (s *Service) Restore(ctx context.Context, input RestoreInput) (RestoreResult, error) {
	if err := input.Validate(); err != nil {
		return RestoreResult{}, err
	}

	var (
		result RestoreResult
		kind   domain.EntityKind
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.GetForUpdate(txCtx, input.AuditID)
		if err != nil {
			return fmt.Errorf("get audit record: %w", err)
		}
		kind = rec.EntityKind

		if rec.Kind != domain.AuditKindDelete {
			return fmt.Errorf("audit record %d is %s, not DELETE: %w", rec.ID, rec.Kind, domain.ErrInvalidState)
		}

		h, ok := s.handler(rec.EntityKind)
		if !ok {
			return fmt.Errorf("audit record %d entity kind %q: %w", rec.ID, rec.EntityKind, domain.ErrUnknownEntityKind)
		}

		out, err := h.restore(txCtx, rec)
		if err != nil {
			return err
		}

		if err := s.records.MarkRestored(txCtx, rec.ID); err != nil {
			return fmt.Errorf("mark audit record restored: %w", err)
		}
		flag := true
		rec.IsRestored = &flag

		result = RestoreResult{
			Record:        rec,
			Kind:          rec.EntityKind,
			PrimaryKey:    rec.PrimaryKey,
			AlreadyActive: out.alreadyActive,
			NewClaimID:    out.newClaimID,
		}
		return nil
	})

	s.metrics.ObserveLifecycle(opRestore, kind, outcome(err, result.AlreadyActive))
	if err != nil {
		return RestoreResult{}, err
	}

	s.log.InfoContext(ctx, "entity restored",
		slog.Int64("audit_id", input.AuditID),
		slog.String("entity_kind", result.Kind.String()),
		slog.String("primary_key", result.PrimaryKey),
		slog.Bool("already_active", result.AlreadyActive),
		slog.Any("actor", input.Actor),
	)

	return result, nil
}
