// Package access manages roles and their claims.
package access

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

type roleRepo interface {
	Create(ctx context.Context, name string) (domain.Role, error)
	GetByID(ctx context.Context, id int64) (domain.Role, error)
	Lock(ctx context.Context, id int64) (domain.Role, error)
	ListClaims(ctx context.Context, roleID int64) ([]domain.RoleClaim, error)
	CreateClaim(ctx context.Context, claim domain.RoleClaim) (domain.RoleClaim, error)
}

type auditWriter interface {
	RecordCreate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements role and claim administration.
type Service struct {
	roles roleRepo
	audit auditWriter
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new access service.
func NewService(log *slog.Logger, roles roleRepo, audit auditWriter, tx txManager) *Service {
	return &Service{
		roles: roles,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "access"),
	}
}
