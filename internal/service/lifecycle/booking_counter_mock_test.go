package lifecycle

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ bookingCounter = &bookingCounterMock{}

type bookingCounterMock struct {
	CountPendingByCustomerFunc func(ctx context.Context, customerID uuid.UUID) (int, error)

	calls struct {
		CountPendingByCustomer []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
		}
	}
	lockCountPendingByCustomer sync.RWMutex
}

func (mock *bookingCounterMock) CountPendingByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	if mock.CountPendingByCustomerFunc == nil {
		panic("bookingCounterMock.CountPendingByCustomerFunc: method is nil but bookingCounter.CountPendingByCustomer was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
	}{
		Ctx:        ctx,
		CustomerID: customerID,
	}
	mock.lockCountPendingByCustomer.Lock()
	mock.calls.CountPendingByCustomer = append(mock.calls.CountPendingByCustomer, callInfo)
	mock.lockCountPendingByCustomer.Unlock()
	return mock.CountPendingByCustomerFunc(ctx, customerID)
}

func (mock *bookingCounterMock) CountPendingByCustomerCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
} {
	mock.lockCountPendingByCustomer.RLock()
	calls := mock.calls.CountPendingByCustomer
	mock.lockCountPendingByCustomer.RUnlock()
	return calls
}
