// Package booking implements the Booking repository and the aggregate
// queries behind booking statistics.
package booking

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voucher-backend/internal/domain"
)

const table = "bookings"

var columns = []string{
	"id", "customer_id", "service_package_id", "voucher_id", "status", "price", "booked_at", "is_deleted", "created_at",
}

// Repo provides booking persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new booking repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

// Create inserts a new booking.
func (r *Repo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	status := b.Status
	if status == "" {
		status = domain.BookingStatusPending
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("customer_id", "service_package_id", "voucher_id", "status", "price", "booked_at").
		Values(b.CustomerID, b.ServicePackageID, b.VoucherID, string(status), b.Price, b.BookedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Booking{}, fmt.Errorf("build booking insert: %w", err)
	}

	var created domain.Booking
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.Booking{}, postgres.MapError(err, "booking", b.CustomerID)
	}
	return created, nil
}

// GetForUpdate returns a booking and locks its row.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (domain.Booking, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return domain.Booking{}, fmt.Errorf("build booking select: %w", err)
	}

	var b domain.Booking
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &b, query, args...); err != nil {
		return domain.Booking{}, postgres.MapError(err, "booking", id)
	}
	return b, nil
}

// UpdateStatus moves a live booking from one status to another. A booking that
// is not in status from yields ErrNotFound.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Where(sq.Eq{"id": id, "status": string(from), "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build booking update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "booking", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %d in status %s: %w", id, from, domain.ErrNotFound)
	}
	return nil
}

// CountPendingByCustomer counts live PENDING bookings of a customer.
func (r *Repo) CountPendingByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"customer_id": customerID, "status": string(domain.BookingStatusPending), "is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build booking count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending bookings of customer %s: %w", customerID, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

func windowConditions(w domain.BookingWindow) sq.And {
	return sq.And{
		sq.Eq{"is_deleted": false, "status": string(w.Status)},
		sq.GtOrEq{"booked_at": w.Start},
		sq.Lt{"booked_at": w.End},
	}
}

// MonthlyTotals sums booking prices of one customer per UTC calendar month.
// Months without bookings are absent.
func (r *Repo) MonthlyTotals(ctx context.Context, customerID uuid.UUID, w domain.BookingWindow) ([]domain.MonthlyTotal, error) {
	query, args, err := postgres.Builder().
		Select(
			"EXTRACT(YEAR FROM booked_at AT TIME ZONE 'UTC')::int AS year",
			"EXTRACT(MONTH FROM booked_at AT TIME ZONE 'UTC')::int AS month",
			"SUM(price) AS total",
		).
		From(table).
		Where(sq.Eq{"customer_id": customerID}).
		Where(windowConditions(w)).
		GroupBy("1", "2").
		OrderBy("1", "2").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build monthly totals: %w", err)
	}

	var totals []domain.MonthlyTotal
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &totals, query, args...); err != nil {
		return nil, fmt.Errorf("monthly totals of customer %s: %w", customerID, err)
	}
	return totals, nil
}

type packageAggregate struct {
	PackageID int64           `db:"package_id"`
	Count     int64           `db:"count"`
	Total     decimal.Decimal `db:"total"`
}

// CountByPackage returns the number of bookings per package id. Packages
// without bookings are absent.
func (r *Repo) CountByPackage(ctx context.Context, w domain.BookingWindow) (map[int64]int64, error) {
	rows, err := r.aggregateByPackage(ctx, w)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.PackageID] = row.Count
	}
	return counts, nil
}

// SumByPackage returns the summed booking price per package id. Packages
// without bookings are absent.
func (r *Repo) SumByPackage(ctx context.Context, w domain.BookingWindow) (map[int64]decimal.Decimal, error) {
	rows, err := r.aggregateByPackage(ctx, w)
	if err != nil {
		return nil, err
	}

	sums := make(map[int64]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.PackageID] = row.Total
	}
	return sums, nil
}

func (r *Repo) aggregateByPackage(ctx context.Context, w domain.BookingWindow) ([]packageAggregate, error) {
	query, args, err := postgres.Builder().
		Select("service_package_id AS package_id", "count(*) AS count", "SUM(price) AS total").
		From(table).
		Where(windowConditions(w)).
		GroupBy("service_package_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build package aggregate: %w", err)
	}

	var rows []packageAggregate
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("aggregate bookings by package: %w", err)
	}
	return rows, nil
}
