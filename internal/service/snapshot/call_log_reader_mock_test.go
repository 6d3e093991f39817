package snapshot

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ callLogReader = &callLogReaderMock{}

type callLogReaderMock struct {
	RecentFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CallLogEntry, error)

	calls struct {
		Recent []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockRecent sync.RWMutex
}

func (mock *callLogReaderMock) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CallLogEntry, error) {
	if mock.RecentFunc == nil {
		panic("callLogReaderMock.RecentFunc: method is nil but callLogReader.Recent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, userID, limit)
}

func (mock *callLogReaderMock) RecentCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
