package ingest

import (
	"context"
	"sync"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ locationRepo = &locationRepoMock{}

type locationRepoMock struct {
	CreateFunc func(ctx context.Context, l domain.DeviceLocation) error

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.DeviceLocation
		}
	}
	lockCreate sync.RWMutex
}

func (mock *locationRepoMock) Create(ctx context.Context, l domain.DeviceLocation) error {
	if mock.CreateFunc == nil {
		panic("locationRepoMock.CreateFunc: method is nil but locationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.DeviceLocation
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *locationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.DeviceLocation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
