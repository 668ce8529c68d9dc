package lifecycle

import (
	"context"
	"sync"
)

var _ userCounter = &userCounterMock{}

type userCounterMock struct {
	CountLiveByRoleFunc func(ctx context.Context, roleID int64) (int, error)

	calls struct {
		CountLiveByRole []struct {
			Ctx    context.Context
			RoleID int64
		}
	}
	lockCountLiveByRole sync.RWMutex
}

func (mock *userCounterMock) CountLiveByRole(ctx context.Context, roleID int64) (int, error) {
	if mock.CountLiveByRoleFunc == nil {
		panic("userCounterMock.CountLiveByRoleFunc: method is nil but userCounter.CountLiveByRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoleID int64
	}{
		Ctx:    ctx,
		RoleID: roleID,
	}
	mock.lockCountLiveByRole.Lock()
	mock.calls.CountLiveByRole = append(mock.calls.CountLiveByRole, callInfo)
	mock.lockCountLiveByRole.Unlock()
	return mock.CountLiveByRoleFunc(ctx, roleID)
}

func (mock *userCounterMock) CountLiveByRoleCalls() []struct {
	Ctx    context.Context
	RoleID int64
} {
	mock.lockCountLiveByRole.RLock()
	calls := mock.calls.CountLiveByRole
	mock.lockCountLiveByRole.RUnlock()
	return calls
}
