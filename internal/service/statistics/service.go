// Package statistics computes read-only booking summaries.
package statistics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

type customerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error)
}

type packageRepo interface {
	ListLivePackages(ctx context.Context) ([]domain.ServicePackage, error)
}

type bookingRepo interface {
	MonthlyTotals(ctx context.Context, customerID uuid.UUID, w domain.BookingWindow) ([]domain.MonthlyTotal, error)
	CountByPackage(ctx context.Context, w domain.BookingWindow) (map[int64]int64, error)
	SumByPackage(ctx context.Context, w domain.BookingWindow) (map[int64]decimal.Decimal, error)
}

// Config tunes the aggregator.
type Config struct {
	// CountedStatus is the booking status that counts as consumption.
	CountedStatus domain.BookingStatus
	// MaxRangeYears caps the length of a queried range. Zero means no cap.
	MaxRangeYears int
}

// Service aggregates confirmed, non-deleted bookings.
type Service struct {
	customers customerRepo
	packages  packageRepo
	bookings  bookingRepo
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new statistics service.
func NewService(
	log *slog.Logger,
	cfg Config,
	customers customerRepo,
	packages packageRepo,
	bookings bookingRepo,
) *Service {
	if cfg.CountedStatus == "" {
		cfg.CountedStatus = domain.BookingStatusConfirmed
	}
	return &Service{
		customers: customers,
		packages:  packages,
		bookings:  bookings,
		cfg:       cfg,
		log:       log.With("service", "statistics"),
	}
}

func (s *Service) checkRange(r domain.DateRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if s.cfg.MaxRangeYears > 0 && len(r.Years()) > s.cfg.MaxRangeYears {
		return domain.NewValidationError("to", "range spans too many years")
	}
	return nil
}
