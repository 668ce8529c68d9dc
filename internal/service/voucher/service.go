// Package voucher issues vouchers, extends their expiry and expires them.
package voucher

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

type voucherRepo interface {
	Create(ctx context.Context, v domain.Voucher) (domain.Voucher, error)
	GetByID(ctx context.Context, id int64) (domain.Voucher, error)
	GetForUpdate(ctx context.Context, id int64) (domain.Voucher, error)
	UpdateExpiry(ctx context.Context, id int64, expiresAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.VoucherStatus) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	CreateExtension(ctx context.Context, e domain.ExpiredDateExtension) (domain.ExpiredDateExtension, error)
	ListExtensions(ctx context.Context, voucherID int64) ([]domain.ExpiredDateExtension, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
}

type voucherTypeRepo interface {
	GetVoucherType(ctx context.Context, id int64) (domain.VoucherType, error)
}

type auditWriter interface {
	RecordCreate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)
	RecordUpdate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds voucher business rules.
type Config struct {
	// MaxExtensionDays caps a single expiry extension.
	MaxExtensionDays int
}

// Service implements voucher operations.
type Service struct {
	vouchers  voucherRepo
	customers customerRepo
	types     voucherTypeRepo
	audit     auditWriter
	tx        txManager
	cfg       Config
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new voucher service.
func NewService(
	log *slog.Logger,
	cfg Config,
	vouchers voucherRepo,
	customers customerRepo,
	types voucherTypeRepo,
	audit auditWriter,
	tx txManager,
) *Service {
	if cfg.MaxExtensionDays <= 0 {
		cfg.MaxExtensionDays = 365
	}
	return &Service{
		vouchers:  vouchers,
		customers: customers,
		types:     types,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "voucher"),
		now:       time.Now,
	}
}
