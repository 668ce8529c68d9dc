// Package user implements the staff User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var columns = []string{"id", "email", "full_name", "role_id", "is_deleted", "created_at"}

// Repo provides staff user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new active user.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "email", "full_name", "role_id").
		Values(u.ID, u.Email, u.FullName, u.RoleID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build user insert: %w", err)
	}

	var created domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user whether or not it is deleted.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build user select: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// CountLiveByRole counts non-deleted users assigned to a role.
func (r *Repo) CountLiveByRole(ctx context.Context, roleID int64) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("users").
		Where(sq.Eq{"role_id": roleID, "is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users of role %d: %w", roleID, err)
	}
	return n, nil
}
