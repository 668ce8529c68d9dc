// Package voucher implements persistence for vouchers and their expiry
// extensions.
package voucher

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var (
	voucherColumns = []string{
		"id", "voucher_type_id", "customer_id", "code", "status", "expires_at", "is_deleted", "created_at",
	}
	extensionColumns = []string{
		"id", "voucher_id", "previous_expires_at", "new_expires_at", "reason", "created_by", "is_deleted", "created_at",
	}
)

// Repo provides voucher persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new voucher repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Vouchers
// ---------------------------------------------------------------------------

// Create inserts a new voucher.
func (r *Repo) Create(ctx context.Context, v domain.Voucher) (domain.Voucher, error) {
	status := v.Status
	if status == "" {
		status = domain.VoucherStatusActive
	}

	query, args, err := postgres.Builder().
		Insert("vouchers").
		Columns("voucher_type_id", "customer_id", "code", "status", "expires_at").
		Values(v.VoucherTypeID, v.CustomerID, v.Code, string(status), v.ExpiresAt).
		Suffix("RETURNING " + strings.Join(voucherColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Voucher{}, fmt.Errorf("build voucher insert: %w", err)
	}

	var created domain.Voucher
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.Voucher{}, postgres.MapError(err, "voucher", v.Code)
	}
	return created, nil
}

// GetByID returns a voucher whether or not it is deleted.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Voucher, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a voucher and locks its row.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (domain.Voucher, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id int64, suffix string) (domain.Voucher, error) {
	b := postgres.Builder().Select(voucherColumns...).From("vouchers").Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return domain.Voucher{}, fmt.Errorf("build voucher select: %w", err)
	}

	var v domain.Voucher
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &v, query, args...); err != nil {
		return domain.Voucher{}, postgres.MapError(err, "voucher", id)
	}
	return v, nil
}

// UpdateExpiry moves the expiry of a live voucher.
func (r *Repo) UpdateExpiry(ctx context.Context, id int64, expiresAt time.Time) error {
	return r.update(ctx, id, sq.Eq{"expires_at": expiresAt})
}

// UpdateStatus sets the status of a live voucher.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.VoucherStatus) error {
	return r.update(ctx, id, sq.Eq{"status": string(status)})
}

func (r *Repo) update(ctx context.Context, id int64, set sq.Eq) error {
	query, args, err := postgres.Builder().
		Update("vouchers").
		SetMap(set).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build voucher update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "voucher", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("voucher %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ExpireOverdue marks every live ACTIVE voucher whose expiry is not after now
// as EXPIRED and returns how many changed.
func (r *Repo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Update("vouchers").
		Set("status", string(domain.VoucherStatusExpired)).
		Where(sq.Eq{"status": string(domain.VoucherStatusActive), "is_deleted": false}).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build voucher expire: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "voucher", "overdue")
	}
	return tag.RowsAffected(), nil
}

// CountActiveByType counts live ACTIVE vouchers of a type that expire after now.
func (r *Repo) CountActiveByType(ctx context.Context, typeID int64, now time.Time) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("vouchers").
		Where(sq.Eq{"voucher_type_id": typeID, "status": string(domain.VoucherStatusActive), "is_deleted": false}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build voucher count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active vouchers of type %d: %w", typeID, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Expiry extensions
// ---------------------------------------------------------------------------

// CreateExtension records an expiry change.
func (r *Repo) CreateExtension(ctx context.Context, e domain.ExpiredDateExtension) (domain.ExpiredDateExtension, error) {
	query, args, err := postgres.Builder().
		Insert("expired_date_extensions").
		Columns("voucher_id", "previous_expires_at", "new_expires_at", "reason", "created_by").
		Values(e.VoucherID, e.PreviousExpiresAt, e.NewExpiresAt, e.Reason, e.CreatedBy).
		Suffix("RETURNING " + strings.Join(extensionColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.ExpiredDateExtension{}, fmt.Errorf("build extension insert: %w", err)
	}

	var created domain.ExpiredDateExtension
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.ExpiredDateExtension{}, postgres.MapError(err, "expired_date_extension", e.VoucherID)
	}
	return created, nil
}

// ListExtensions returns the live extensions of a voucher, oldest first.
func (r *Repo) ListExtensions(ctx context.Context, voucherID int64) ([]domain.ExpiredDateExtension, error) {
	query, args, err := postgres.Builder().
		Select(extensionColumns...).
		From("expired_date_extensions").
		Where(sq.Eq{"voucher_id": voucherID, "is_deleted": false}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build extension list: %w", err)
	}

	var exts []domain.ExpiredDateExtension
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &exts, query, args...); err != nil {
		return nil, fmt.Errorf("list extensions of voucher %d: %w", voucherID, err)
	}
	return exts, nil
}
