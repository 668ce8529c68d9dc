package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

type statisticsService interface {
	ConsumptionByMonth(ctx context.Context, customerID uuid.UUID, r domain.DateRange) ([]domain.YearlyConsumption, error)
	BookingCountsByPackage(ctx context.Context, r domain.DateRange) ([]domain.PackageBookingCount, error)
	TotalSpendByPackage(ctx context.Context, r domain.DateRange) ([]domain.PackageSpending, error)
}

// StatisticsHandler serves the reporting endpoints.
type StatisticsHandler struct {
	svc statisticsService
	log *slog.Logger
}

// NewStatisticsHandler creates a StatisticsHandler.
func NewStatisticsHandler(svc statisticsService, logger *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{svc: svc, log: logger.With("handler", "statistics")}
}

type monthAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

type yearConsumption struct {
	Year   int             `json:"year"`
	Months []monthAmount   `json:"months"`
	Total  decimal.Decimal `json:"total"`
}

type consumptionResponse struct {
	CustomerID uuid.UUID         `json:"customer_id"`
	Years      []yearConsumption `json:"years"`
}

// Consumption handles GET /admin/statistics/consumption?customer_id=&from=&to=
func (h *StatisticsHandler) Consumption(w http.ResponseWriter, r *http.Request) {
	customerID, err := queryUUID(r, "customer_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if customerID == nil {
		handleError(h.log, w, r, domain.NewValidationError("customer_id", "required"))
		return
	}
	rng, err := dateRange(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	years, err := h.svc.ConsumptionByMonth(r.Context(), *customerID, rng)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := consumptionResponse{CustomerID: *customerID, Years: make([]yearConsumption, 0, len(years))}
	for _, y := range years {
		yc := yearConsumption{Year: y.Year, Total: y.Total(), Months: make([]monthAmount, 0, 12)}
		for m := time.January; m <= time.December; m++ {
			yc.Months = append(yc.Months, monthAmount{Month: m.String(), Amount: y.Months[m]})
		}
		resp.Years = append(resp.Years, yc)
	}

	writeJSON(w, http.StatusOK, resp)
}

// PackageBookings handles GET /admin/statistics/package-bookings?from=&to=
func (h *StatisticsHandler) PackageBookings(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRange(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	counts, err := h.svc.BookingCountsByPackage(r.Context(), rng)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

// PackageSpend handles GET /admin/statistics/package-spend?from=&to=
func (h *StatisticsHandler) PackageSpend(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRange(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	spend, err := h.svc.TotalSpendByPackage(r.Context(), rng)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, spend)
}
