package grammar

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ languageRepo = &languageRepoMock{}

type languageRepoMock struct {
	NextIDFunc    func(ctx context.Context, langID uuid.UUID) (int64, error)
	ReserveIDFunc func(ctx context.Context, langID uuid.UUID, id int64) error

	calls struct {
		NextID []struct {
			Ctx    context.Context
			LangID uuid.UUID
		}
		ReserveID []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
	}
	lockNextID    sync.RWMutex
	lockReserveID sync.RWMutex
}

func (mock *languageRepoMock) NextID(ctx context.Context, langID uuid.UUID) (int64, error) {
	if mock.NextIDFunc == nil {
		panic("languageRepoMock.NextIDFunc: method is nil but languageRepo.NextID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
	}{
		Ctx:    ctx,
		LangID: langID,
	}
	mock.lockNextID.Lock()
	mock.calls.NextID = append(mock.calls.NextID, callInfo)
	mock.lockNextID.Unlock()
	return mock.NextIDFunc(ctx, langID)
}

func (mock *languageRepoMock) NextIDCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
} {
	mock.lockNextID.RLock()
	calls := mock.calls.NextID
	mock.lockNextID.RUnlock()
	return calls
}

func (mock *languageRepoMock) ReserveID(ctx context.Context, langID uuid.UUID, id int64) error {
	if mock.ReserveIDFunc == nil {
		panic("languageRepoMock.ReserveIDFunc: method is nil but languageRepo.ReserveID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Id:     id,
	}
	mock.lockReserveID.Lock()
	mock.calls.ReserveID = append(mock.calls.ReserveID, callInfo)
	mock.lockReserveID.Unlock()
	return mock.ReserveIDFunc(ctx, langID, id)
}

func (mock *languageRepoMock) ReserveIDCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockReserveID.RLock()
	calls := mock.calls.ReserveID
	mock.lockReserveID.RUnlock()
	return calls
}
