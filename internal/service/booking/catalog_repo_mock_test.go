package booking

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	GetPackageFunc     func(ctx context.Context, id int64) (domain.ServicePackage, error)
	GetVoucherTypeFunc func(ctx context.Context, id int64) (domain.VoucherType, error)

	calls struct {
		GetPackage []struct {
			Ctx context.Context
			Id  int64
		}
		GetVoucherType []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetPackage     sync.RWMutex
	lockGetVoucherType sync.RWMutex
}

func (mock *catalogRepoMock) GetPackage(ctx context.Context, id int64) (domain.ServicePackage, error) {
	if mock.GetPackageFunc == nil {
		panic("catalogRepoMock.GetPackageFunc: method is nil but catalogRepo.GetPackage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetPackage.Lock()
	mock.calls.GetPackage = append(mock.calls.GetPackage, callInfo)
	mock.lockGetPackage.Unlock()
	return mock.GetPackageFunc(ctx, id)
}

func (mock *catalogRepoMock) GetPackageCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetPackage.RLock()
	calls := mock.calls.GetPackage
	mock.lockGetPackage.RUnlock()
	return calls
}

func (mock *catalogRepoMock) GetVoucherType(ctx context.Context, id int64) (domain.VoucherType, error) {
	if mock.GetVoucherTypeFunc == nil {
		panic("catalogRepoMock.GetVoucherTypeFunc: method is nil but catalogRepo.GetVoucherType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetVoucherType.Lock()
	mock.calls.GetVoucherType = append(mock.calls.GetVoucherType, callInfo)
	mock.lockGetVoucherType.Unlock()
	return mock.GetVoucherTypeFunc(ctx, id)
}

func (mock *catalogRepoMock) GetVoucherTypeCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetVoucherType.RLock()
	calls := mock.calls.GetVoucherType
	mock.lockGetVoucherType.RUnlock()
	return calls
}
