package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/service/access"
	"github.com/heartmarshall/voucher-backend/pkg/ctxutil"
)

type accessService interface {
	CreateRole(ctx context.Context, input access.CreateRoleInput) (domain.Role, error)
	AddClaim(ctx context.Context, input access.AddClaimInput) (domain.RoleClaim, error)
	ListClaims(ctx context.Context, roleID int64) ([]domain.RoleClaim, error)
}

// AccessHandler serves role and claim administration.
type AccessHandler struct {
	svc accessService
	log *slog.Logger
}

// NewAccessHandler creates an AccessHandler.
func NewAccessHandler(svc accessService, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{svc: svc, log: logger.With("handler", "access")}
}

type createRoleRequest struct {
	Name string `json:"name"`
}

type addClaimRequest struct {
	ClaimType  string `json:"claim_type"`
	ClaimValue string `json:"claim_value"`
}

// CreateRole handles POST /admin/roles.
func (h *AccessHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	role, err := h.svc.CreateRole(r.Context(), access.CreateRoleInput{
		Name:  req.Name,
		Actor: ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, role)
}

// AddClaim handles POST /admin/roles/{id}/claims.
func (h *AccessHandler) AddClaim(w http.ResponseWriter, r *http.Request) {
	roleID, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addClaimRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	claim, err := h.svc.AddClaim(r.Context(), access.AddClaimInput{
		RoleID:     roleID,
		ClaimType:  req.ClaimType,
		ClaimValue: req.ClaimValue,
		Actor:      ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, claim)
}

// ListClaims handles GET /admin/roles/{id}/claims.
func (h *AccessHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	roleID, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	claims, err := h.svc.ListClaims(r.Context(), roleID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, claims)
}
