package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/service/voucher"
)

var _ voucherService = &voucherServiceMock{}

type voucherServiceMock struct {
	IssueFunc        func(ctx context.Context, input voucher.IssueInput) (domain.Voucher, error)
	GetFunc          func(ctx context.Context, id int64) (domain.Voucher, []domain.ExpiredDateExtension, error)
	ExtendExpiryFunc func(ctx context.Context, input voucher.ExtendInput) (domain.ExpiredDateExtension, error)

	calls struct {
		Issue []struct {
			Ctx   context.Context
			Input voucher.IssueInput
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		ExtendExpiry []struct {
			Ctx   context.Context
			Input voucher.ExtendInput
		}
	}
	lockIssue        sync.RWMutex
	lockGet          sync.RWMutex
	lockExtendExpiry sync.RWMutex
}

func (mock *voucherServiceMock) Issue(ctx context.Context, input voucher.IssueInput) (domain.Voucher, error) {
	if mock.IssueFunc == nil {
		panic("voucherServiceMock.IssueFunc: method is nil but voucherService.Issue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input voucher.IssueInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(ctx, input)
}

func (mock *voucherServiceMock) IssueCalls() []struct {
	Ctx   context.Context
	Input voucher.IssueInput
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *voucherServiceMock) Get(ctx context.Context, id int64) (domain.Voucher, []domain.ExpiredDateExtension, error) {
	if mock.GetFunc == nil {
		panic("voucherServiceMock.GetFunc: method is nil but voucherService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *voucherServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *voucherServiceMock) ExtendExpiry(ctx context.Context, input voucher.ExtendInput) (domain.ExpiredDateExtension, error) {
	if mock.ExtendExpiryFunc == nil {
		panic("voucherServiceMock.ExtendExpiryFunc: method is nil but voucherService.ExtendExpiry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input voucher.ExtendInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockExtendExpiry.Lock()
	mock.calls.ExtendExpiry = append(mock.calls.ExtendExpiry, callInfo)
	mock.lockExtendExpiry.Unlock()
	return mock.ExtendExpiryFunc(ctx, input)
}

func (mock *voucherServiceMock) ExtendExpiryCalls() []struct {
	Ctx   context.Context
	Input voucher.ExtendInput
} {
	mock.lockExtendExpiry.RLock()
	calls := mock.calls.ExtendExpiry
	mock.lockExtendExpiry.RUnlock()
	return calls
}
