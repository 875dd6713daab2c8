package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ languageRepo = &languageRepoMock{}

type languageRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	GetGuideFunc func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error)

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
	}
	lockGetByID  sync.RWMutex
	lockGetGuide sync.RWMutex
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
