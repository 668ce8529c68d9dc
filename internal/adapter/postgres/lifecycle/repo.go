// Package lifecycle owns the is_deleted column of every soft-deletable table.
// No other repository writes it.
package lifecycle

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// tables maps flag-based entity kinds to their tables. RoleClaim is absent:
// claims are hard-deleted.
var tables = map[domain.EntityKind]string{
	domain.EntityKindCustomer:             "customers",
	domain.EntityKindUser:                 "users",
	domain.EntityKindRole:                 "roles",
	domain.EntityKindService:              "services",
	domain.EntityKindServicePackage:       "service_packages",
	domain.EntityKindVoucherType:          "voucher_types",
	domain.EntityKindVoucher:              "vouchers",
	domain.EntityKindBooking:              "bookings",
	domain.EntityKindExpiredDateExtension: "expired_date_extensions",
}

// Supports reports whether kind is stored with a deleted flag.
func Supports(kind domain.EntityKind) bool {
	_, ok := tables[kind]
	return ok
}

// Repo reads and flips deleted flags.
type Repo struct {
	db postgres.Querier
}

// New creates a new lifecycle repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the lifecycle of one entity and locks its row for the rest of
// the transaction.
func (r *Repo) Get(ctx context.Context, kind domain.EntityKind, key domain.EntityKey) (domain.Lifecycle, error) {
	table, err := tableFor(kind)
	if err != nil {
		return domain.Lifecycle{}, err
	}

	query, args, err := postgres.Builder().
		Select("is_deleted").
		From(table).
		Where(sq.Eq{"id": key.Value()}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return domain.Lifecycle{}, fmt.Errorf("build %s lifecycle select: %w", table, err)
	}

	var lc domain.Lifecycle
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&lc.Deleted); err != nil {
		return domain.Lifecycle{}, postgres.MapError(err, kind.String(), key)
	}
	return lc, nil
}

// SetDeleted moves one entity from !deleted to deleted (or back) and reports
// whether a row changed. A row already in the target state is left untouched
// and yields false.
func (r *Repo) SetDeleted(ctx context.Context, kind domain.EntityKind, key domain.EntityKey, deleted bool) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("is_deleted", deleted).
		Where(sq.Eq{"id": key.Value()}).
		Where(sq.Eq{"is_deleted": !deleted}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s lifecycle update: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, kind.String(), key)
	}
	return tag.RowsAffected() > 0, nil
}

func tableFor(kind domain.EntityKind) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("lifecycle %q: %w", kind, domain.ErrUnknownEntityKind)
	}
	return table, nil
}
