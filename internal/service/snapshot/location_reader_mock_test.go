package snapshot

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ locationReader = &locationReaderMock{}

type locationReaderMock struct {
	LatestFunc func(ctx context.Context, userID uuid.UUID) (*domain.DeviceLocation, error)

	calls struct {
		Latest []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockLatest sync.RWMutex
}

func (mock *locationReaderMock) Latest(ctx context.Context, userID uuid.UUID) (*domain.DeviceLocation, error) {
	if mock.LatestFunc == nil {
		panic("locationReaderMock.LatestFunc: method is nil but locationReader.Latest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, userID)
}

func (mock *locationReaderMock) LatestCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}
