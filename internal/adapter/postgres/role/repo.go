// Package role implements persistence for roles and their claims.
package role

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
	roleColumns  = []string{"id", "name", "is_deleted", "created_at"}
	claimColumns = []string{"id", "role_id", "claim_type", "claim_value"}
)

// Repo provides role and claim persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new role repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

// Create inserts a new active role.
func (r *Repo) Create(ctx context.Context, name string) (domain.Role, error) {
	query, args, err := postgres.Builder().
		Insert("roles").
		Columns("name").
		Values(name).
		Suffix("RETURNING " + strings.Join(roleColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.Role{}, fmt.Errorf("build role insert: %w", err)
	}

	var role domain.Role
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &role, query, args...); err != nil {
		return domain.Role{}, postgres.MapError(err, "role", name)
	}
	return role, nil
}

// GetByID returns a role whether or not it is deleted.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Role, error) {
	return r.get(ctx, id, "")
}

// Lock returns a role and holds a row lock until the transaction ends, so
// that claim changes on the role are serialized.
func (r *Repo) Lock(ctx context.Context, id int64) (domain.Role, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id int64, suffix string) (domain.Role, error) {
	b := postgres.Builder().Select(roleColumns...).From("roles").Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return domain.Role{}, fmt.Errorf("build role select: %w", err)
	}

	var role domain.Role
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &role, query, args...); err != nil {
		return domain.Role{}, postgres.MapError(err, "role", id)
	}
	return role, nil
}

// ---------------------------------------------------------------------------
// Claims
// ---------------------------------------------------------------------------

// ListClaims returns all claims of a role ordered by id.
func (r *Repo) ListClaims(ctx context.Context, roleID int64) ([]domain.RoleClaim, error) {
	query, args, err := postgres.Builder().
		Select(claimColumns...).
		From("role_claims").
		Where(sq.Eq{"role_id": roleID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build claim list: %w", err)
	}

	var claims []domain.RoleClaim
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &claims, query, args...); err != nil {
		return nil, fmt.Errorf("list claims of role %d: %w", roleID, err)
	}
	return claims, nil
}

// GetClaim returns one claim.
func (r *Repo) GetClaim(ctx context.Context, id int64) (domain.RoleClaim, error) {
	query, args, err := postgres.Builder().
		Select(claimColumns...).
		From("role_claims").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.RoleClaim{}, fmt.Errorf("build claim select: %w", err)
	}

	var claim domain.RoleClaim
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &claim, query, args...); err != nil {
		return domain.RoleClaim{}, postgres.MapError(err, "role_claim", id)
	}
	return claim, nil
}

// CreateClaim inserts a claim and returns it with its new id.
func (r *Repo) CreateClaim(ctx context.Context, claim domain.RoleClaim) (domain.RoleClaim, error) {
	query, args, err := postgres.Builder().
		Insert("role_claims").
		Columns("role_id", "claim_type", "claim_value").
		Values(claim.RoleID, claim.ClaimType, claim.ClaimValue).
		Suffix("RETURNING " + strings.Join(claimColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.RoleClaim{}, fmt.Errorf("build claim insert: %w", err)
	}

	var created domain.RoleClaim
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.RoleClaim{}, postgres.MapError(err, "role_claim", claim.ClaimValue)
	}
	return created, nil
}

// DeleteClaim hard-deletes a claim and returns the removed row.
func (r *Repo) DeleteClaim(ctx context.Context, id int64) (domain.RoleClaim, error) {
	query, args, err := postgres.Builder().
		Delete("role_claims").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(claimColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.RoleClaim{}, fmt.Errorf("build claim delete: %w", err)
	}

	var removed domain.RoleClaim
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &removed, query, args...); err != nil {
		return domain.RoleClaim{}, postgres.MapError(err, "role_claim", id)
	}
	return removed, nil
}
