package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// ConsumptionByMonth returns one bucket per calendar year of r, each holding
// all twelve months. Months without bookings are zero.
func (s *Service) ConsumptionByMonth(ctx context.Context, customerID uuid.UUID, r domain.DateRange) ([]domain.YearlyConsumption, error) {
	if customerID == uuid.Nil {
		return nil, domain.NewValidationError("customer_id", "required")
	}
	if err := s.checkRange(r); err != nil {
		return nil, err
	}

	var totals []domain.MonthlyTotal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.customers.GetByID(gctx, customerID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}
		if c.IsDeleted() {
			return fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totals, err = s.bookings.MonthlyTotals(gctx, customerID, r.Window(s.cfg.CountedStatus))
		if err != nil {
			return fmt.Errorf("monthly totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	years := r.Years()
	buckets := make([]domain.YearlyConsumption, len(years))
	index := make(map[int]int, len(years))
	for i, y := range years {
		buckets[i] = domain.NewYearlyConsumption(y)
		index[y] = i
	}

	for _, t := range totals {
		i, ok := index[t.Year]
		if !ok || t.Month < 1 || t.Month > 12 {
			s.log.WarnContext(ctx, "monthly total outside requested range",
				slog.Int("year", t.Year),
				slog.Int("month", t.Month),
			)
			continue
		}
		m := time.Month(t.Month)
		buckets[i].Months[m] = buckets[i].Months[m].Add(t.Total)
	}

	return buckets, nil
}
