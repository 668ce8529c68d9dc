package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ statisticsService = &statisticsServiceMock{}

type statisticsServiceMock struct {
	ConsumptionByMonthFunc     func(ctx context.Context, customerID uuid.UUID, r domain.DateRange) ([]domain.YearlyConsumption, error)
	BookingCountsByPackageFunc func(ctx context.Context, r domain.DateRange) ([]domain.PackageBookingCount, error)
	TotalSpendByPackageFunc    func(ctx context.Context, r domain.DateRange) ([]domain.PackageSpending, error)

	calls struct {
		ConsumptionByMonth []struct {
			Ctx        context.Context
			CustomerID uuid.UUID
			R          domain.DateRange
		}
		BookingCountsByPackage []struct {
			Ctx context.Context
			R   domain.DateRange
		}
		TotalSpendByPackage []struct {
			Ctx context.Context
			R   domain.DateRange
		}
	}
	lockConsumptionByMonth     sync.RWMutex
	lockBookingCountsByPackage sync.RWMutex
	lockTotalSpendByPackage    sync.RWMutex
}

func (mock *statisticsServiceMock) ConsumptionByMonth(ctx context.Context, customerID uuid.UUID, r domain.DateRange) ([]domain.YearlyConsumption, error) {
	if mock.ConsumptionByMonthFunc == nil {
		panic("statisticsServiceMock.ConsumptionByMonthFunc: method is nil but statisticsService.ConsumptionByMonth was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID uuid.UUID
		R          domain.DateRange
	}{
		Ctx:        ctx,
		CustomerID: customerID,
		R:          r,
	}
	mock.lockConsumptionByMonth.Lock()
	mock.calls.ConsumptionByMonth = append(mock.calls.ConsumptionByMonth, callInfo)
	mock.lockConsumptionByMonth.Unlock()
	return mock.ConsumptionByMonthFunc(ctx, customerID, r)
}

func (mock *statisticsServiceMock) ConsumptionByMonthCalls() []struct {
	Ctx        context.Context
	CustomerID uuid.UUID
	R          domain.DateRange
} {
	mock.lockConsumptionByMonth.RLock()
	calls := mock.calls.ConsumptionByMonth
	mock.lockConsumptionByMonth.RUnlock()
	return calls
}

func (mock *statisticsServiceMock) BookingCountsByPackage(ctx context.Context, r domain.DateRange) ([]domain.PackageBookingCount, error) {
	if mock.BookingCountsByPackageFunc == nil {
		panic("statisticsServiceMock.BookingCountsByPackageFunc: method is nil but statisticsService.BookingCountsByPackage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.DateRange
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockBookingCountsByPackage.Lock()
	mock.calls.BookingCountsByPackage = append(mock.calls.BookingCountsByPackage, callInfo)
	mock.lockBookingCountsByPackage.Unlock()
	return mock.BookingCountsByPackageFunc(ctx, r)
}

func (mock *statisticsServiceMock) BookingCountsByPackageCalls() []struct {
	Ctx context.Context
	R   domain.DateRange
} {
	mock.lockBookingCountsByPackage.RLock()
	calls := mock.calls.BookingCountsByPackage
	mock.lockBookingCountsByPackage.RUnlock()
	return calls
}

func (mock *statisticsServiceMock) TotalSpendByPackage(ctx context.Context, r domain.DateRange) ([]domain.PackageSpending, error) {
	if mock.TotalSpendByPackageFunc == nil {
		panic("statisticsServiceMock.TotalSpendByPackageFunc: method is nil but statisticsService.TotalSpendByPackage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.DateRange
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockTotalSpendByPackage.Lock()
	mock.calls.TotalSpendByPackage = append(mock.calls.TotalSpendByPackage, callInfo)
	mock.lockTotalSpendByPackage.Unlock()
	return mock.TotalSpendByPackageFunc(ctx, r)
}

func (mock *statisticsServiceMock) TotalSpendByPackageCalls() []struct {
	Ctx context.Context
	R   domain.DateRange
} {
	mock.lockTotalSpendByPackage.RLock()
	calls := mock.calls.TotalSpendByPackage
	mock.lockTotalSpendByPackage.RUnlock()
	return calls
}
