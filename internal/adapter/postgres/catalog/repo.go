// Package catalog implements persistence for services, service packages and
// voucher types.
package catalog

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var (
	serviceColumns     = []string{"id", "name", "description", "is_deleted", "created_at"}
	packageColumns     = []string{"id", "service_id", "name", "price", "is_deleted", "created_at"}
	voucherTypeColumns = []string{"id", "service_package_id", "name", "validity_days", "is_deleted", "created_at"}
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

// CreateService inserts a new active service.
func (r *Repo) CreateService(ctx context.Context, s domain.Service) (domain.Service, error) {
	query, args, err := postgres.Builder().
		Insert("services").
		Columns("name", "description").
		Values(s.Name, s.Description).
		Suffix("RETURNING " + strings.Join(serviceColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Service{}, fmt.Errorf("build service insert: %w", err)
	}

	var created domain.Service
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.Service{}, postgres.MapError(err, "service", s.Name)
	}
	return created, nil
}

// CountLivePackagesByService counts non-deleted packages of a service.
func (r *Repo) CountLivePackagesByService(ctx context.Context, serviceID int64) (int, error) {
	return r.count(ctx, "service_packages", sq.Eq{"service_id": serviceID, "is_deleted": false})
}

// ---------------------------------------------------------------------------
// Service packages
// ---------------------------------------------------------------------------

// CreatePackage inserts a new active package.
func (r *Repo) CreatePackage(ctx context.Context, p domain.ServicePackage) (domain.ServicePackage, error) {
	query, args, err := postgres.Builder().
		Insert("service_packages").
		Columns("service_id", "name", "price").
		Values(p.ServiceID, p.Name, p.Price).
		Suffix("RETURNING " + strings.Join(packageColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.ServicePackage{}, fmt.Errorf("build package insert: %w", err)
	}

	var created domain.ServicePackage
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.ServicePackage{}, postgres.MapError(err, "service_package", p.Name)
	}
	return created, nil
}

// GetPackage returns a package whether or not it is deleted.
func (r *Repo) GetPackage(ctx context.Context, id int64) (domain.ServicePackage, error) {
	query, args, err := postgres.Builder().
		Select(packageColumns...).
		From("service_packages").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.ServicePackage{}, fmt.Errorf("build package select: %w", err)
	}

	var p domain.ServicePackage
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, query, args...); err != nil {
		return domain.ServicePackage{}, postgres.MapError(err, "service_package", id)
	}
	return p, nil
}

// ListLivePackages returns every non-deleted package ordered by id.
func (r *Repo) ListLivePackages(ctx context.Context) ([]domain.ServicePackage, error) {
	query, args, err := postgres.Builder().
		Select(packageColumns...).
		From("service_packages").
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build package list: %w", err)
	}

	var pkgs []domain.ServicePackage
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &pkgs, query, args...); err != nil {
		return nil, fmt.Errorf("list service packages: %w", err)
	}
	return pkgs, nil
}

// CountLiveVoucherTypesByPackage counts non-deleted voucher types of a package.
func (r *Repo) CountLiveVoucherTypesByPackage(ctx context.Context, packageID int64) (int, error) {
	return r.count(ctx, "voucher_types", sq.Eq{"service_package_id": packageID, "is_deleted": false})
}

// ---------------------------------------------------------------------------
// Voucher types
// ---------------------------------------------------------------------------

// CreateVoucherType inserts a new active voucher type.
func (r *Repo) CreateVoucherType(ctx context.Context, vt domain.VoucherType) (domain.VoucherType, error) {
	query, args, err := postgres.Builder().
		Insert("voucher_types").
		Columns("service_package_id", "name", "validity_days").
		Values(vt.ServicePackageID, vt.Name, vt.ValidityDays).
		Suffix("RETURNING " + strings.Join(voucherTypeColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.VoucherType{}, fmt.Errorf("build voucher type insert: %w", err)
	}

	var created domain.VoucherType
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.VoucherType{}, postgres.MapError(err, "voucher_type", vt.Name)
	}
	return created, nil
}

// GetVoucherType returns a voucher type whether or not it is deleted.
func (r *Repo) GetVoucherType(ctx context.Context, id int64) (domain.VoucherType, error) {
	query, args, err := postgres.Builder().
		Select(voucherTypeColumns...).
		From("voucher_types").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.VoucherType{}, fmt.Errorf("build voucher type select: %w", err)
	}

	var vt domain.VoucherType
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &vt, query, args...); err != nil {
		return domain.VoucherType{}, postgres.MapError(err, "voucher_type", id)
	}
	return vt, nil
}

func (r *Repo) count(ctx context.Context, table string, where sq.Sqlizer) (int, error) {
	query, args, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", table, err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
