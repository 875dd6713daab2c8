package language

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ ruleRepo = &ruleRepoMock{}

type ruleRepoMock struct {
	ListFunc func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
		}
	}
	lockList sync.RWMutex
}

func (mock *ruleRepoMock) List(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error) {
	if mock.ListFunc == nil {
		panic("ruleRepoMock.ListFunc: method is nil but ruleRepo.List was just called")
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
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, langID, kind)
}

func (mock *ruleRepoMock) ListCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
