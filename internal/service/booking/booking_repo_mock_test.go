package booking

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ bookingRepo = &bookingRepoMock{}

type bookingRepoMock struct {
	CreateFunc       func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	GetForUpdateFunc func(ctx context.Context, id int64) (domain.Booking, error)
	UpdateStatusFunc func(ctx context.Context, id int64, from domain.BookingStatus, to domain.BookingStatus) error

	calls struct {
		Create []struct {
			Ctx context.Context
			B   domain.Booking
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		UpdateStatus []struct {
			Ctx  context.Context
			Id   int64
			From domain.BookingStatus
			To   domain.BookingStatus
		}
	}
	lockCreate       sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *bookingRepoMock) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if mock.CreateFunc == nil {
		panic("bookingRepoMock.CreateFunc: method is nil but bookingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Booking
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   domain.Booking
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookingRepoMock) GetForUpdate(ctx context.Context, id int64) (domain.Booking, error) {
	if mock.GetForUpdateFunc == nil {
		panic("bookingRepoMock.GetForUpdateFunc: method is nil but bookingRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *bookingRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *bookingRepoMock) UpdateStatus(ctx context.Context, id int64, from domain.BookingStatus, to domain.BookingStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("bookingRepoMock.UpdateStatusFunc: method is nil but bookingRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   int64
		From domain.BookingStatus
		To   domain.BookingStatus
	}{
		Ctx:  ctx,
		Id:   id,
		From: from,
		To:   to,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, from, to)
}

func (mock *bookingRepoMock) UpdateStatusCalls() []struct {
	Ctx  context.Context
	Id   int64
	From domain.BookingStatus
	To   domain.BookingStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
