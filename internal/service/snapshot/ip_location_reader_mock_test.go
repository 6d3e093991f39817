package snapshot

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
)

var _ ipLocationReader = &ipLocationReaderMock{}

type ipLocationReaderMock struct {
	LatestFunc func(ctx context.Context, userID uuid.UUID) (*domain.IPLocation, error)

	calls struct {
		Latest []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockLatest sync.RWMutex
}

func (mock *ipLocationReaderMock) Latest(ctx context.Context, userID uuid.UUID) (*domain.IPLocation, error) {
	if mock.LatestFunc == nil {
		panic("ipLocationReaderMock.LatestFunc: method is nil but ipLocationReader.Latest was just called")
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

func (mock *ipLocationReaderMock) LatestCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}
