package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/service/audit"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	GetFunc  func(ctx context.Context, id int64) (domain.AuditRecord, error)
	ListFunc func(ctx context.Context, input audit.ListInput) (audit.ListResult, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx   context.Context
			Input audit.ListInput
		}
	}
	lockGet  sync.RWMutex
	lockList sync.RWMutex
}

func (mock *auditServiceMock) Get(ctx context.Context, id int64) (domain.AuditRecord, error) {
	if mock.GetFunc == nil {
		panic("auditServiceMock.GetFunc: method is nil but auditService.Get was just called")
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

func (mock *auditServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *auditServiceMock) List(ctx context.Context, input audit.ListInput) (audit.ListResult, error) {
	if mock.ListFunc == nil {
		panic("auditServiceMock.ListFunc: method is nil but auditService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input audit.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *auditServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input audit.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
