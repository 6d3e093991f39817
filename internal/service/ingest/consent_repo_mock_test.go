package ingest

import (
	"context"
	"sync"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ consentRepo = &consentRepoMock{}

type consentRepoMock struct {
	CreateFunc func(ctx context.Context, c domain.ConsentLog) error

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.ConsentLog
		}
	}
	lockCreate sync.RWMutex
}

func (mock *consentRepoMock) Create(ctx context.Context, c domain.ConsentLog) error {
	if mock.CreateFunc == nil {
		panic("consentRepoMock.CreateFunc: method is nil but consentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.ConsentLog
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *consentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.ConsentLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
