package lifecycle

import (
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	ObserveLifecycleFunc func(op string, kind domain.EntityKind, outcome string)

	calls struct {
		ObserveLifecycle []struct {
			Op      string
			Kind    domain.EntityKind
			Outcome string
		}
	}
	lockObserveLifecycle sync.RWMutex
}

func (mock *metricsRecorderMock) ObserveLifecycle(op string, kind domain.EntityKind, outcome string) {
	if mock.ObserveLifecycleFunc == nil {
		panic("metricsRecorderMock.ObserveLifecycleFunc: method is nil but metricsRecorder.ObserveLifecycle was just called")
	}
	callInfo := struct {
		Op      string
		Kind    domain.EntityKind
		Outcome string
	}{
		Op:      op,
		Kind:    kind,
		Outcome: outcome,
	}
	mock.lockObserveLifecycle.Lock()
	mock.calls.ObserveLifecycle = append(mock.calls.ObserveLifecycle, callInfo)
	mock.lockObserveLifecycle.Unlock()
	mock.ObserveLifecycleFunc(op, kind, outcome)
}

func (mock *metricsRecorderMock) ObserveLifecycleCalls() []struct {
	Op      string
	Kind    domain.EntityKind
	Outcome string
} {
	mock.lockObserveLifecycle.RLock()
	calls := mock.calls.ObserveLifecycle
	mock.lockObserveLifecycle.RUnlock()
	return calls
}
