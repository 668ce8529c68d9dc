package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/service/booking"
	"github.com/heartmarshall/voucher-backend/pkg/ctxutil"
)

type bookingService interface {
	Create(ctx context.Context, input booking.CreateInput) (domain.Booking, error)
	Confirm(ctx context.Context, input booking.TransitionInput) (domain.Booking, error)
	Cancel(ctx context.Context, input booking.TransitionInput) (domain.Booking, error)
}

// BookingHandler serves booking creation and status transitions.
type BookingHandler struct {
	svc bookingService
	log *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: logger.With("handler", "booking")}
}

type createBookingRequest struct {
	CustomerID       uuid.UUID `json:"customer_id"`
	ServicePackageID int64     `json:"service_package_id"`
	VoucherID        *int64    `json:"voucher_id,omitempty"`
}

// Create handles POST /admin/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), booking.CreateInput{
		CustomerID:       req.CustomerID,
		ServicePackageID: req.ServicePackageID,
		VoucherID:        req.VoucherID,
		Actor:            ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// Confirm handles POST /admin/bookings/{id}/confirm.
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Confirm)
}

// Cancel handles POST /admin/bookings/{id}/cancel.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel)
}

func (h *BookingHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, booking.TransitionInput) (domain.Booking, error),
) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	b, err := fn(r.Context(), booking.TransitionInput{
		BookingID: id,
		Actor:     ctxutil.ActorFromCtx(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, b)
}
