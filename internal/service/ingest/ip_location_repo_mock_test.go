package ingest

import (
	"context"
	"sync"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ ipLocationRepo = &ipLocationRepoMock{}

type ipLocationRepoMock struct {
	CreateFunc func(ctx context.Context, l domain.IPLocation) error

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.IPLocation
		}
	}
	lockCreate sync.RWMutex
}

func (mock *ipLocationRepoMock) Create(ctx context.Context, l domain.IPLocation) error {
	if mock.CreateFunc == nil {
		panic("ipLocationRepoMock.CreateFunc: method is nil but ipLocationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.IPLocation
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *ipLocationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.IPLocation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
