package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/service/voucher"
	"github.com/heartmarshall/voucher-backend/pkg/ctxutil"
)

type voucherService interface {
	Issue(ctx context.Context, input voucher.IssueInput) (domain.Voucher, error)
	Get(ctx context.Context, id int64) (domain.Voucher, []domain.ExpiredDateExtension, error)
	ExtendExpiry(ctx context.Context, input voucher.ExtendInput) (domain.ExpiredDateExtension, error)
}

// VoucherHandler serves voucher issuing and expiry extensions.
type VoucherHandler struct {
	svc voucherService
	log *slog.Logger
}

// NewVoucherHandler creates a VoucherHandler.
func NewVoucherHandler(svc voucherService, logger *slog.Logger) *VoucherHandler {
	return &VoucherHandler{svc: svc, log: logger.With("handler", "voucher")}
}

type issueVoucherRequest struct {
	VoucherTypeID int64     `json:"voucher_type_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
}

type extendVoucherRequest struct {
	Days   int    `json:"days"`
	Reason string `json:"reason"`
}

type voucherResponse struct {
	domain.Voucher
	Extensions []domain.ExpiredDateExtension `json:"extensions"`
}

// Issue handles POST /admin/vouchers.
func (h *VoucherHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueVoucherRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, err := h.svc.Issue(r.Context(), voucher.IssueInput{
		VoucherTypeID: req.VoucherTypeID,
		CustomerID:    req.CustomerID,
		Actor:         ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, v)
}

// Get handles GET /admin/vouchers/{id}.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	v, extensions, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if extensions == nil {
		extensions = []domain.ExpiredDateExtension{}
	}

	writeJSON(w, http.StatusOK, voucherResponse{Voucher: v, Extensions: extensions})
}

// Extend handles POST /admin/vouchers/{id}/extensions.
func (h *VoucherHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req extendVoucherRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ext, err := h.svc.ExtendExpiry(r.Context(), voucher.ExtendInput{
		VoucherID: id,
		Days:      req.Days,
		Reason:    req.Reason,
		Actor:     ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ext)
}
