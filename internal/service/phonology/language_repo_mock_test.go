package phonology

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ languageRepo = &languageRepoMock{}

type languageRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	GetGuideFunc  func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error)
	NextIDFunc    func(ctx context.Context, langID uuid.UUID) (int64, error)
	ReserveIDFunc func(ctx context.Context, langID uuid.UUID, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetGuide []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
		}
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
	lockGetByID   sync.RWMutex
	lockGetGuide  sync.RWMutex
	lockNextID    sync.RWMutex
	lockReserveID sync.RWMutex
}

func (mock *languageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if mock.GetByIDFunc == nil {
		panic("languageRepoMock.GetByIDFunc: method is nil but languageRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *languageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *languageRepoMock) GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error) {
	if mock.GetGuideFunc == nil {
		panic("languageRepoMock.GetGuideFunc: method is nil but languageRepo.GetGuide was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Kind   domain.GuideKind
	}{
		Ctx:    ctx,
		LangID: langID,
		Kind:   kind,
	}
	mock.lockGetGuide.Lock()
	mock.calls.GetGuide = append(mock.calls.GetGuide, callInfo)
	mock.lockGetGuide.Unlock()
	return mock.GetGuideFunc(ctx, langID, kind)
}

func (mock *languageRepoMock) GetGuideCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
} {
	mock.lockGetGuide.RLock()
	calls := mock.calls.GetGuide
	mock.lockGetGuide.RUnlock()
	return calls
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
