package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"github.com/heartmarshall/telemetry-backend/internal/service/ingest"
)

var _ ingestService = &ingestServiceMock{}

type ingestServiceMock struct {
	RecordConsentFunc  func(ctx context.Context, input ingest.ConsentInput) (*domain.ConsentLog, error)
	ReportLocationFunc func(ctx context.Context, input ingest.LocationInput) (*domain.DeviceLocation, error)
	ReportCallsFunc    func(ctx context.Context, input ingest.CallsInput) (int, error)
	ReportIPFunc       func(ctx context.Context, input ingest.IPReportInput) (*domain.IPLocation, error)

	calls struct {
		RecordConsent []struct {
			Ctx   context.Context
			Input ingest.ConsentInput
		}
		ReportLocation []struct {
			Ctx   context.Context
			Input ingest.LocationInput
		}
		ReportCalls []struct {
			Ctx   context.Context
			Input ingest.CallsInput
		}
		ReportIP []struct {
			Ctx   context.Context
			Input ingest.IPReportInput
		}
	}
	lockRecordConsent  sync.RWMutex
	lockReportLocation sync.RWMutex
	lockReportCalls    sync.RWMutex
	lockReportIP       sync.RWMutex
}

func (mock *ingestServiceMock) RecordConsent(ctx context.Context, input ingest.ConsentInput) (*domain.ConsentLog, error) {
	if mock.RecordConsentFunc == nil {
		panic("ingestServiceMock.RecordConsentFunc: method is nil but ingestService.RecordConsent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ingest.ConsentInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordConsent.Lock()
	mock.calls.RecordConsent = append(mock.calls.RecordConsent, callInfo)
	mock.lockRecordConsent.Unlock()
	return mock.RecordConsentFunc(ctx, input)
}

func (mock *ingestServiceMock) RecordConsentCalls() []struct {
	Ctx   context.Context
	Input ingest.ConsentInput
} {
	mock.lockRecordConsent.RLock()
	calls := mock.calls.RecordConsent
	mock.lockRecordConsent.RUnlock()
	return calls
}

func (mock *ingestServiceMock) ReportLocation(ctx context.Context, input ingest.LocationInput) (*domain.DeviceLocation, error) {
	if mock.ReportLocationFunc == nil {
		panic("ingestServiceMock.ReportLocationFunc: method is nil but ingestService.ReportLocation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ingest.LocationInput
	}{Ctx: ctx, Input: input}
	mock.lockReportLocation.Lock()
	mock.calls.ReportLocation = append(mock.calls.ReportLocation, callInfo)
	mock.lockReportLocation.Unlock()
	return mock.ReportLocationFunc(ctx, input)
}

func (mock *ingestServiceMock) ReportLocationCalls() []struct {
	Ctx   context.Context
	Input ingest.LocationInput
} {
	mock.lockReportLocation.RLock()
	calls := mock.calls.ReportLocation
	mock.lockReportLocation.RUnlock()
	return calls
}

func (mock *ingestServiceMock) ReportCalls(ctx context.Context, input ingest.CallsInput) (int, error) {
	if mock.ReportCallsFunc == nil {
		panic("ingestServiceMock.ReportCallsFunc: method is nil but ingestService.ReportCalls was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ingest.CallsInput
	}{Ctx: ctx, Input: input}
	mock.lockReportCalls.Lock()
	mock.calls.ReportCalls = append(mock.calls.ReportCalls, callInfo)
	mock.lockReportCalls.Unlock()
	return mock.ReportCallsFunc(ctx, input)
}

func (mock *ingestServiceMock) ReportCallsCalls() []struct {
	Ctx   context.Context
	Input ingest.CallsInput
} {
	mock.lockReportCalls.RLock()
	calls := mock.calls.ReportCalls
	mock.lockReportCalls.RUnlock()
	return calls
}

func (mock *ingestServiceMock) ReportIP(ctx context.Context, input ingest.IPReportInput) (*domain.IPLocation, error) {
	if mock.ReportIPFunc == nil {
		panic("ingestServiceMock.ReportIPFunc: method is nil but ingestService.ReportIP was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ingest.IPReportInput
	}{Ctx: ctx, Input: input}
	mock.lockReportIP.Lock()
	mock.calls.ReportIP = append(mock.calls.ReportIP, callInfo)
	mock.lockReportIP.Unlock()
	return mock.ReportIPFunc(ctx, input)
}

func (mock *ingestServiceMock) ReportIPCalls() []struct {
	Ctx   context.Context
	Input ingest.IPReportInput
} {
	mock.lockReportIP.RLock()
	calls := mock.calls.ReportIP
	mock.lockReportIP.RUnlock()
	return calls
}
