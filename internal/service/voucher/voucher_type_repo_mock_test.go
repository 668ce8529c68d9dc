package voucher

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ voucherTypeRepo = &voucherTypeRepoMock{}

type voucherTypeRepoMock struct {
	GetVoucherTypeFunc func(ctx context.Context, id int64) (domain.VoucherType, error)

	calls struct {
		GetVoucherType []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetVoucherType sync.RWMutex
}

func (mock *voucherTypeRepoMock) GetVoucherType(ctx context.Context, id int64) (domain.VoucherType, error) {
	if mock.GetVoucherTypeFunc == nil {
		panic("voucherTypeRepoMock.GetVoucherTypeFunc: method is nil but voucherTypeRepo.GetVoucherType was just called")
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

func (mock *voucherTypeRepoMock) GetVoucherTypeCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetVoucherType.RLock()
	calls := mock.calls.GetVoucherType
	mock.lockGetVoucherType.RUnlock()
	return calls
}
