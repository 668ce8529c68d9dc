package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/service/audit"
	"github.com/heartmarshall/voucher-backend/internal/service/lifecycle"
	"github.com/heartmarshall/voucher-backend/pkg/ctxutil"
)

type lifecycleService interface {
	SoftDelete(ctx context.Context, input lifecycle.SoftDeleteInput) (domain.AuditRecord, error)
	Restore(ctx context.Context, input lifecycle.RestoreInput) (lifecycle.RestoreResult, error)
}

type auditService interface {
	Get(ctx context.Context, id int64) (domain.AuditRecord, error)
	List(ctx context.Context, input audit.ListInput) (audit.ListResult, error)
}

// LifecycleHandler serves soft delete, restore and audit history.
type LifecycleHandler struct {
	lifecycle lifecycleService
	audit     auditService
	log       *slog.Logger
}

// NewLifecycleHandler creates a LifecycleHandler.
func NewLifecycleHandler(lc lifecycleService, audit auditService, logger *slog.Logger) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycle: lc,
		audit:     audit,
		log:       logger.With("handler", "lifecycle"),
	}
}

// SoftDelete handles DELETE /admin/entities/{kind}/{id}.
func (h *LifecycleHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	rec, err := h.lifecycle.SoftDelete(r.Context(), lifecycle.SoftDeleteInput{
		Kind:  domain.EntityKind(r.PathValue("kind")),
		ID:    r.PathValue("id"),
		Actor: ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Restore handles POST /admin/audit-logs/{id}/restore.
func (h *LifecycleHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.lifecycle.Restore(r.Context(), lifecycle.RestoreInput{
		AuditID: id,
		Actor:   ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetAuditLog handles GET /admin/audit-logs/{id}.
func (h *LifecycleHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.audit.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// ListAuditLogs handles
// GET /admin/audit-logs?entity_kind=&kind=&primary_key=&created_by=&from=&to=&restored=&limit=&offset=
func (h *LifecycleHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	input, err := auditListInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.audit.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func auditListInput(r *http.Request) (audit.ListInput, error) {
	q := r.URL.Query()
	input := audit.ListInput{
		EntityKind: q.Get("entity_kind"),
		Kind:       q.Get("kind"),
		PrimaryKey: q.Get("primary_key"),
	}

	var err error
	if input.CreatedBy, err = queryUUID(r, "created_by"); err != nil {
		return input, err
	}
	if input.From, err = queryTime(r, "from"); err != nil {
		return input, err
	}
	if input.To, err = queryTime(r, "to"); err != nil {
		return input, err
	}
	if input.Restored, err = queryBool(r, "restored"); err != nil {
		return input, err
	}
	if input.Limit, err = queryInt(r, "limit", 0); err != nil {
		return input, err
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		return input, err
	}
	return input, nil
}
