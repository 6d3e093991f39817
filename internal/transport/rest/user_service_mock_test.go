package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/telemetry-backend/internal/domain"
	"github.com/heartmarshall/telemetry-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	CreateFunc func(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateFunc func(ctx context.Context, input user.UpdateUserInput) (uuid.UUID, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input user.CreateUserInput
		}
		Update []struct {
			Ctx   context.Context
			Input user.UpdateUserInput
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *userServiceMock) Create(ctx context.Context, input user.CreateUserInput) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userServiceMock.CreateFunc: method is nil but userService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.CreateUserInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *userServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input user.CreateUserInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userServiceMock) Update(ctx context.Context, input user.UpdateUserInput) (uuid.UUID, error) {
	if mock.UpdateFunc == nil {
		panic("userServiceMock.UpdateFunc: method is nil but userService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateUserInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *userServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input user.UpdateUserInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
