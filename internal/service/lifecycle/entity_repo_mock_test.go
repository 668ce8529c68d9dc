package lifecycle

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ entityRepo = &entityRepoMock{}

type entityRepoMock struct {
	GetFunc        func(ctx context.Context, kind domain.EntityKind, key domain.EntityKey) (domain.Lifecycle, error)
	SetDeletedFunc func(ctx context.Context, kind domain.EntityKind, key domain.EntityKey, deleted bool) (bool, error)

	calls struct {
		Get []struct {
			Ctx  context.Context
			Kind domain.EntityKind
			Key  domain.EntityKey
		}
		SetDeleted []struct {
			Ctx     context.Context
			Kind    domain.EntityKind
			Key     domain.EntityKey
			Deleted bool
		}
	}
	lockGet        sync.RWMutex
	lockSetDeleted sync.RWMutex
}

func (mock *entityRepoMock) Get(ctx context.Context, kind domain.EntityKind, key domain.EntityKey) (domain.Lifecycle, error) {
	if mock.GetFunc == nil {
		panic("entityRepoMock.GetFunc: method is nil but entityRepo.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
		Key  domain.EntityKey
	}{
		Ctx:  ctx,
		Kind: kind,
		Key:  key,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, kind, key)
}

func (mock *entityRepoMock) GetCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
	Key  domain.EntityKey
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *entityRepoMock) SetDeleted(ctx context.Context, kind domain.EntityKind, key domain.EntityKey, deleted bool) (bool, error) {
	if mock.SetDeletedFunc == nil {
		panic("entityRepoMock.SetDeletedFunc: method is nil but entityRepo.SetDeleted was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Kind    domain.EntityKind
		Key     domain.EntityKey
		Deleted bool
	}{
		Ctx:     ctx,
		Kind:    kind,
		Key:     key,
		Deleted: deleted,
	}
	mock.lockSetDeleted.Lock()
	mock.calls.SetDeleted = append(mock.calls.SetDeleted, callInfo)
	mock.lockSetDeleted.Unlock()
	return mock.SetDeletedFunc(ctx, kind, key, deleted)
}

func (mock *entityRepoMock) SetDeletedCalls() []struct {
	Ctx     context.Context
	Kind    domain.EntityKind
	Key     domain.EntityKey
	Deleted bool
} {
	mock.lockSetDeleted.RLock()
	calls := mock.calls.SetDeleted
	mock.lockSetDeleted.RUnlock()
	return calls
}
