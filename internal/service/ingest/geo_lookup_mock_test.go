package ingest

import (
	"context"
	"sync"

	"github.com/heartmarshall/telemetry-backend/internal/provider"
)

var _ geoLookup = &geoLookupMock{}

type geoLookupMock struct {
	LookupFunc func(ctx context.Context, ip string) (*provider.GeoResult, error)

	calls struct {
		Lookup []struct {
			Ctx context.Context
			IP  string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *geoLookupMock) Lookup(ctx context.Context, ip string) (*provider.GeoResult, error) {
	if mock.LookupFunc == nil {
		panic("geoLookupMock.LookupFunc: method is nil but geoLookup.Lookup was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IP  string
	}{Ctx: ctx, IP: ip}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, ip)
}

func (mock *geoLookupMock) LookupCalls() []struct {
	Ctx context.Context
	IP  string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
