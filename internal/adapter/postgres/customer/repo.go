// Package customer implements the Customer repository using PostgreSQL.
package customer

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

var columns = []string{"id", "full_name", "email", "phone", "is_deleted", "created_at"}

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new active customer. A nil ID is replaced with a fresh one.
func (r *Repo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("customers").
		Columns("id", "full_name", "email", "phone").
		Values(c.ID, c.FullName, c.Email, c.Phone).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Customer{}, fmt.Errorf("build customer insert: %w", err)
	}

	var created domain.Customer
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return domain.Customer{}, postgres.MapError(err, "customer", c.Email)
	}
	return created, nil
}

// GetByID returns a customer whether or not it is deleted.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("customers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Customer{}, fmt.Errorf("build customer select: %w", err)
	}

	var c domain.Customer
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, query, args...); err != nil {
		return domain.Customer{}, postgres.MapError(err, "customer", id)
	}
	return c, nil
}
