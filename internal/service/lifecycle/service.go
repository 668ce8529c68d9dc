// Package lifecycle implements the soft-delete dispatcher and the recovery
// engine. Every entity kind is served by one registry entry; the registry
// covers all of domain.EntityKinds.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

type entityRepo interface {
	Get(ctx context.Context, kind domain.EntityKind, key domain.EntityKey) (domain.Lifecycle, error)
	SetDeleted(ctx context.Context, kind domain.EntityKind, key domain.EntityKey, deleted bool) (bool, error)
}

type auditWriter interface {
	RecordDelete(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)
}

type auditStore interface {
	GetForUpdate(ctx context.Context, id int64) (domain.AuditRecord, error)
	MarkRestored(ctx context.Context, id int64) error
}

type claimRepo interface {
	Lock(ctx context.Context, roleID int64) (domain.Role, error)
	ListClaims(ctx context.Context, roleID int64) ([]domain.RoleClaim, error)
	CreateClaim(ctx context.Context, claim domain.RoleClaim) (domain.RoleClaim, error)
	DeleteClaim(ctx context.Context, id int64) (domain.RoleClaim, error)
}

type voucherCounter interface {
	CountActiveByType(ctx context.Context, typeID int64, now time.Time) (int, error)
}

type catalogCounter interface {
	CountLivePackagesByService(ctx context.Context, serviceID int64) (int, error)
	CountLiveVoucherTypesByPackage(ctx context.Context, packageID int64) (int, error)
}

type userCounter interface {
	CountLiveByRole(ctx context.Context, roleID int64) (int, error)
}

type bookingCounter interface {
	CountPendingByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	ObserveLifecycle(op string, kind domain.EntityKind, outcome string)
}

// Guards holds the counters behind the per-kind deletion guards.
type Guards struct {
	Vouchers voucherCounter
	Catalog  catalogCounter
	Users    userCounter
	Bookings bookingCounter
}

// Config tunes restore behavior.
type Config struct {
	// StrictRestore rejects restoring an entity that is already active.
	StrictRestore bool
}

// Service soft-deletes entities and restores them from their audit records.
type Service struct {
	tx       txManager
	writer   auditWriter
	records  auditStore
	metrics  metricsRecorder
	handlers map[domain.EntityKind]kindHandler
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new lifecycle service and builds its kind registry.
func NewService(
	log *slog.Logger,
	cfg Config,
	tx txManager,
	entities entityRepo,
	writer auditWriter,
	records auditStore,
	claims claimRepo,
	guards Guards,
	metrics metricsRecorder,
) *Service {
	s := &Service{
		tx:      tx,
		writer:  writer,
		records: records,
		metrics: metrics,
		now:     time.Now,
		log:     log.With("service", "lifecycle"),
	}

	guardFuncs := s.buildGuards(guards)
	s.handlers = make(map[domain.EntityKind]kindHandler, len(domain.EntityKinds))
	for _, kind := range domain.EntityKinds {
		if kind == domain.EntityKindRoleClaim {
			s.handlers[kind] = &claimHandler{claims: claims}
			continue
		}
		s.handlers[kind] = &flagHandler{
			kind:   kind,
			repo:   entities,
			guard:  guardFuncs[kind],
			strict: cfg.StrictRestore,
		}
	}

	return s
}

func (s *Service) handler(kind domain.EntityKind) (kindHandler, bool) {
	h, ok := s.handlers[kind]
	return h, ok
}
