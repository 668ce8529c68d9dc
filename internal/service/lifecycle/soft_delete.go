package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// SoftDelete marks an entity deleted and appends its DELETE audit record in
// one transaction. RoleClaims are removed and snapshotted instead.
func (s *Service) SoftDelete(ctx context.Context, input SoftDeleteInput) (domain.AuditRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.AuditRecord{}, err
	}

	h, ok := s.handler(input.Kind)
	if !ok {
		s.metrics.ObserveLifecycle(opSoftDelete, input.Kind, outcomeUnknownKind)
		return domain.AuditRecord{}, fmt.Errorf("soft delete %q: %w", input.Kind, domain.ErrUnknownEntityKind)
	}

	var rec domain.AuditRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := h.softDelete(txCtx, input.ID)
		if err != nil {
			return err
		}

		rec, err = s.writer.RecordDelete(txCtx, input.Kind, d.primaryKey, input.Actor, d.payload)
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})

	s.metrics.ObserveLifecycle(opSoftDelete, input.Kind, outcome(err, false))
	if err != nil {
		return domain.AuditRecord{}, err
	}

	s.log.InfoContext(ctx, "entity soft-deleted",
		slog.String("entity_kind", input.Kind.String()),
		slog.String("primary_key", rec.PrimaryKey),
		slog.Int64("audit_id", rec.ID),
		slog.Any("actor", input.Actor),
	)

	return rec, nil
}
