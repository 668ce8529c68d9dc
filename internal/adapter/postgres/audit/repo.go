// Package audit implements the audit log repository using PostgreSQL.
// Records are append-only; the only mutable column is is_restored.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voucher-backend/internal/domain"
)

const table = "audit_logs"

var columns = []string{
	"id", "kind", "entity_kind", "primary_key", "created_by", "created_at", "payload", "is_restored",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// auditRow mirrors the audit_logs table.
type auditRow struct {
	ID         int64      `db:"id"`
	Kind       string     `db:"kind"`
	EntityKind string     `db:"entity_kind"`
	PrimaryKey string     `db:"primary_key"`
	CreatedBy  *uuid.UUID `db:"created_by"`
	CreatedAt  time.Time  `db:"created_at"`
	Payload    []byte     `db:"payload"`
	IsRestored *bool      `db:"is_restored"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// It joins the transaction carried by ctx, if any.
func (r *Repo) Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error) {
	var payload []byte
	if rec.Payload != nil {
		b, err := json.Marshal(rec.Payload)
		if err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_log marshal payload: %w", err)
		}
		payload = b
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("kind", "entity_kind", "primary_key", "created_by", "created_at", "payload", "is_restored").
		Values(string(rec.Kind), string(rec.EntityKind), rec.PrimaryKey, rec.CreatedBy, createdAt, payload, rec.IsRestored).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build audit_log insert: %w", err)
	}

	var row auditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_log", rec.EntityKind.String()+"/"+rec.PrimaryKey)
	}

	return row.toDomain()
}

// MarkRestored sets is_restored = TRUE on a delete record.
func (r *Repo) MarkRestored(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_restored", true).
		Where(sq.Eq{"id": id, "kind": string(domain.AuditKindDelete)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit_log update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "audit_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("audit_log %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one audit record.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.AuditRecord, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns one audit record and locks its row until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (domain.AuditRecord, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id int64, suffix string) (domain.AuditRecord, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build audit_log select: %w", err)
	}

	var row auditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_log", id)
	}

	return row.toDomain()
}

// List returns one page of audit records matching filter, newest first,
// plus the total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, int, error) {
	where := filterConditions(filter)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countQuery, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build audit_log count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit_logs: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build audit_log list: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list audit_logs: %w", err)
	}

	records := make([]domain.AuditRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, total, nil
}

func filterConditions(f domain.AuditFilter) sq.And {
	where := sq.And{}
	if f.EntityKind != nil {
		where = append(where, sq.Eq{"entity_kind": string(*f.EntityKind)})
	}
	if f.Kind != nil {
		where = append(where, sq.Eq{"kind": string(*f.Kind)})
	}
	if f.PrimaryKey != nil {
		where = append(where, sq.Eq{"primary_key": *f.PrimaryKey})
	}
	if f.CreatedBy != nil {
		where = append(where, sq.Eq{"created_by": *f.CreatedBy})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.Lt{"created_at": *f.To})
	}
	if f.Restored != nil {
		where = append(where, sq.Eq{"is_restored": *f.Restored})
	}
	return where
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func (row auditRow) toDomain() (domain.AuditRecord, error) {
	payload, err := domain.DecodeAuditPayload(row.Payload)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_log %d: %w: %v", row.ID, domain.ErrCorruptAuditRecord, err)
	}

	return domain.AuditRecord{
		ID:         row.ID,
		Kind:       domain.AuditKind(row.Kind),
		EntityKind: domain.EntityKind(row.EntityKind),
		PrimaryKey: row.PrimaryKey,
		CreatedBy:  row.CreatedBy,
		CreatedAt:  row.CreatedAt,
		Payload:    payload,
		IsRestored: row.IsRestored,
	}, nil
}
