package statistics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// BookingCountsByPackage returns the number of counted bookings of every live
// package in r, ordered by package id. Packages without bookings report zero.
func (s *Service) BookingCountsByPackage(ctx context.Context, r domain.DateRange) ([]domain.PackageBookingCount, error) {
	if err := s.checkRange(r); err != nil {
		return nil, err
	}

	var counts map[int64]int64
	pkgs, err := s.withPackages(ctx, func(gctx context.Context) error {
		var err error
		counts, err = s.bookings.CountByPackage(gctx, r.Window(s.cfg.CountedStatus))
		if err != nil {
			return fmt.Errorf("count bookings by package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.PackageBookingCount, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, domain.PackageBookingCount{
			PackageID:   p.ID,
			PackageName: p.Name,
			Count:       counts[p.ID],
		})
	}
	return out, nil
}

// TotalSpendByPackage returns the summed price of counted bookings of every
// live package in r, ordered by package id. Packages without bookings report
// zero.
func (s *Service) TotalSpendByPackage(ctx context.Context, r domain.DateRange) ([]domain.PackageSpending, error) {
	if err := s.checkRange(r); err != nil {
		return nil, err
	}

	var sums map[int64]decimal.Decimal
	pkgs, err := s.withPackages(ctx, func(gctx context.Context) error {
		var err error
		sums, err = s.bookings.SumByPackage(gctx, r.Window(s.cfg.CountedStatus))
		if err != nil {
			return fmt.Errorf("sum bookings by package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.PackageSpending, 0, len(pkgs))
	for _, p := range pkgs {
		total, ok := sums[p.ID]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, domain.PackageSpending{
			PackageID:   p.ID,
			PackageName: p.Name,
			Total:       total,
		})
	}
	return out, nil
}

// withPackages loads the live package list while aggregate runs, and returns
// the packages sorted by id once both finish.
func (s *Service) withPackages(ctx context.Context, aggregate func(ctx context.Context) error) ([]domain.ServicePackage, error) {
	var pkgs []domain.ServicePackage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pkgs, err = s.packages.ListLivePackages(gctx)
		if err != nil {
			return fmt.Errorf("list packages: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return aggregate(gctx)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].ID < pkgs[j].ID })
	return pkgs, nil
}
