package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// Confirm moves a PENDING booking to CONFIRMED.
func (s *Service) Confirm(ctx context.Context, input TransitionInput) (domain.Booking, error) {
	return s.transition(ctx, input, domain.BookingStatusConfirmed)
}

// Cancel moves a PENDING booking to CANCELLED and gives its voucher back.
func (s *Service) Cancel(ctx context.Context, input TransitionInput) (domain.Booking, error) {
	return s.transition(ctx, input, domain.BookingStatusCancelled)
}

func (s *Service) transition(ctx context.Context, input TransitionInput, to domain.BookingStatus) (domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return domain.Booking{}, err
	}

	var b domain.Booking
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		b, err = s.bookings.GetForUpdate(txCtx, input.BookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		if b.IsDeleted() {
			return fmt.Errorf("booking %d: %w", b.ID, domain.ErrNotFound)
		}
		if b.Status != domain.BookingStatusPending {
			return fmt.Errorf("booking %d is %s: %w", b.ID, b.Status, domain.ErrInvalidState)
		}

		if err := s.bookings.UpdateStatus(txCtx, b.ID, b.Status, to); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		fields := map[string]any{
			"status": map[string]any{"old": string(b.Status), "new": string(to)},
		}
		if to == domain.BookingStatusCancelled && b.VoucherID != nil {
			if err := s.vouchers.UpdateStatus(txCtx, *b.VoucherID, domain.VoucherStatusActive); err != nil {
				return fmt.Errorf("release voucher: %w", err)
			}
			fields["released_voucher_id"] = *b.VoucherID
		}

		_, err = s.audit.RecordUpdate(txCtx, domain.EntityKindBooking, strconv.FormatInt(b.ID, 10), input.Actor,
			domain.NewFieldsPayload(fields))
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		b.Status = to
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}

	s.log.InfoContext(ctx, "booking status changed",
		slog.Int64("booking_id", b.ID),
		slog.String("status", string(to)),
	)
	return b, nil
}
