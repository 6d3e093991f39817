package ingest

import (
	"context"
	"sync"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ callLogRepo = &callLogRepoMock{}

type callLogRepoMock struct {
	CreateBatchFunc func(ctx context.Context, entries []domain.CallLogEntry) (int, error)

	calls struct {
		CreateBatch []struct {
			Ctx     context.Context
			Entries []domain.CallLogEntry
		}
	}
	lockCreateBatch sync.RWMutex
}

func (mock *callLogRepoMock) CreateBatch(ctx context.Context, entries []domain.CallLogEntry) (int, error) {
	if mock.CreateBatchFunc == nil {
		panic("callLogRepoMock.CreateBatchFunc: method is nil but callLogRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.CallLogEntry
	}{Ctx: ctx, Entries: entries}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, entries)
}

func (mock *callLogRepoMock) CreateBatchCalls() []struct {
	Ctx     context.Context
	Entries []domain.CallLogEntry
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}
