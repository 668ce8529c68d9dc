// Package audit appends and reads the audit log.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

type auditRepo interface {
	Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error)
	GetByID(ctx context.Context, id int64) (domain.AuditRecord, error)
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, int, error)
}

// Service writes audit records inside the caller's transaction and serves
// audit history.
type Service struct {
	repo auditRepo
	log  *slog.Logger
}

// NewService creates a new audit service.
func NewService(log *slog.Logger, repo auditRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "audit"),
	}
}

// RecordDelete appends the DELETE record of a soft delete. The record starts
// with IsRestored = false.
func (s *Service) RecordDelete(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error) {
	restored := false
	return s.record(ctx, domain.AuditRecord{
		Kind:       domain.AuditKindDelete,
		EntityKind: kind,
		PrimaryKey: primaryKey,
		CreatedBy:  actor,
		Payload:    payload,
		IsRestored: &restored,
	})
}

// RecordCreate appends a CREATE record.
func (s *Service) RecordCreate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error) {
	return s.record(ctx, domain.AuditRecord{
		Kind:       domain.AuditKindCreate,
		EntityKind: kind,
		PrimaryKey: primaryKey,
		CreatedBy:  actor,
		Payload:    payload,
	})
}

// RecordUpdate appends an UPDATE record.
func (s *Service) RecordUpdate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error) {
	return s.record(ctx, domain.AuditRecord{
		Kind:       domain.AuditKindUpdate,
		EntityKind: kind,
		PrimaryKey: primaryKey,
		CreatedBy:  actor,
		Payload:    payload,
	})
}

func (s *Service) record(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error) {
	if !rec.EntityKind.IsValid() {
		return domain.AuditRecord{}, fmt.Errorf("audit %s %q: %w", rec.Kind, rec.EntityKind, domain.ErrUnknownEntityKind)
	}
	if rec.PrimaryKey == "" {
		return domain.AuditRecord{}, domain.NewValidationError("primary_key", "required")
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("append audit record: %w", err)
	}

	s.log.DebugContext(ctx, "audit record appended",
		slog.Int64("audit_id", created.ID),
		slog.String("kind", created.Kind.String()),
		slog.String("entity_kind", created.EntityKind.String()),
		slog.String("primary_key", created.PrimaryKey),
	)
	return created, nil
}
