// Package booking creates bookings and moves them through their statuses.
package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

type bookingRepo interface {
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)
	GetForUpdate(ctx context.Context, id int64) (domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
}

type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
}

type catalogRepo interface {
	GetPackage(ctx context.Context, id int64) (domain.ServicePackage, error)
	GetVoucherType(ctx context.Context, id int64) (domain.VoucherType, error)
}

type voucherRepo interface {
	GetForUpdate(ctx context.Context, id int64) (domain.Voucher, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VoucherStatus) error
}

type auditWriter interface {
	RecordCreate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)
	RecordUpdate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements booking operations.
type Service struct {
	bookings  bookingRepo
	customers customerRepo
	catalog   catalogRepo
	vouchers  voucherRepo
	audit     auditWriter
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new booking service.
func NewService(
	log *slog.Logger,
	bookings bookingRepo,
	customers customerRepo,
	catalog catalogRepo,
	vouchers voucherRepo,
	audit auditWriter,
	tx txManager,
) *Service {
	return &Service{
		bookings:  bookings,
		customers: customers,
		catalog:   catalog,
		vouchers:  vouchers,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "booking"),
		now:       time.Now,
	}
}
