package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ snapshotService = &snapshotServiceMock{}

type snapshotServiceMock struct {
	ListSnapshotsFunc func(ctx context.Context) ([]domain.UserSnapshot, error)

	calls struct {
		ListSnapshots []struct {
			Ctx context.Context
		}
	}
	lockListSnapshots sync.RWMutex
}

func (mock *snapshotServiceMock) ListSnapshots(ctx context.Context) ([]domain.UserSnapshot, error) {
	if mock.ListSnapshotsFunc == nil {
		panic("snapshotServiceMock.ListSnapshotsFunc: method is nil but snapshotService.ListSnapshots was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSnapshots.Lock()
	mock.calls.ListSnapshots = append(mock.calls.ListSnapshots, callInfo)
	mock.lockListSnapshots.Unlock()
	return mock.ListSnapshotsFunc(ctx)
}

func (mock *snapshotServiceMock) ListSnapshotsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSnapshots.RLock()
	calls := mock.calls.ListSnapshots
	mock.lockListSnapshots.RUnlock()
	return calls
}
