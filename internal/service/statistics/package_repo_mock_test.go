package statistics

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ packageRepo = &packageRepoMock{}

type packageRepoMock struct {
	ListLivePackagesFunc func(ctx context.Context) ([]domain.ServicePackage, error)

	calls struct {
		ListLivePackages []struct {
			Ctx context.Context
		}
	}
	lockListLivePackages sync.RWMutex
}

func (mock *packageRepoMock) ListLivePackages(ctx context.Context) ([]domain.ServicePackage, error) {
	if mock.ListLivePackagesFunc == nil {
		panic("packageRepoMock.ListLivePackagesFunc: method is nil but packageRepo.ListLivePackages was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListLivePackages.Lock()
	mock.calls.ListLivePackages = append(mock.calls.ListLivePackages, callInfo)
	mock.lockListLivePackages.Unlock()
	return mock.ListLivePackagesFunc(ctx)
}

func (mock *packageRepoMock) ListLivePackagesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListLivePackages.RLock()
	calls := mock.calls.ListLivePackages
	mock.lockListLivePackages.RUnlock()
	return calls
}
