package phonology

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ ruleRepo = &ruleRepoMock{}

type ruleRepoMock struct {
	ListFunc         func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)
	GetFunc          func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) (domain.PronunciationRule, error)
	CreateFunc       func(ctx context.Context, rule domain.PronunciationRule) error
	UpdateFunc       func(ctx context.Context, rule domain.PronunciationRule) error
	DeleteFunc       func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error
	SetPositionsFunc func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, ids []int64) error

	calls struct {
		List []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
		}
		Get []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
			Id     int64
		}
		Create []struct {
			Ctx  context.Context
			Rule domain.PronunciationRule
		}
		Update []struct {
			Ctx  context.Context
			Rule domain.PronunciationRule
		}
		Delete []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
			Id     int64
		}
		SetPositions []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
			Ids    []int64
		}
	}
	lockList         sync.RWMutex
	lockGet          sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockSetPositions sync.RWMutex
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

func (mock *ruleRepoMock) Get(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) (domain.PronunciationRule, error) {
	if mock.GetFunc == nil {
		panic("ruleRepoMock.GetFunc: method is nil but ruleRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Kind   domain.GuideKind
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Kind:   kind,
		Id:     id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, langID, kind, id)
}

func (mock *ruleRepoMock) GetCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
	Id     int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *ruleRepoMock) Create(ctx context.Context, rule domain.PronunciationRule) error {
	if mock.CreateFunc == nil {
		panic("ruleRepoMock.CreateFunc: method is nil but ruleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Rule domain.PronunciationRule
	}{
		Ctx:  ctx,
		Rule: rule,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rule)
}

func (mock *ruleRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Rule domain.PronunciationRule
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ruleRepoMock) Update(ctx context.Context, rule domain.PronunciationRule) error {
	if mock.UpdateFunc == nil {
		panic("ruleRepoMock.UpdateFunc: method is nil but ruleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Rule domain.PronunciationRule
	}{
		Ctx:  ctx,
		Rule: rule,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rule)
}

func (mock *ruleRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Rule domain.PronunciationRule
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *ruleRepoMock) Delete(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error {
	if mock.DeleteFunc == nil {
		panic("ruleRepoMock.DeleteFunc: method is nil but ruleRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Kind   domain.GuideKind
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Kind:   kind,
		Id:     id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, langID, kind, id)
}

func (mock *ruleRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
	Id     int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *ruleRepoMock) SetPositions(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, ids []int64) error {
	if mock.SetPositionsFunc == nil {
		panic("ruleRepoMock.SetPositionsFunc: method is nil but ruleRepo.SetPositions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Kind   domain.GuideKind
		Ids    []int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Kind:   kind,
		Ids:    ids,
	}
	mock.lockSetPositions.Lock()
	mock.calls.SetPositions = append(mock.calls.SetPositions, callInfo)
	mock.lockSetPositions.Unlock()
	return mock.SetPositionsFunc(ctx, langID, kind, ids)
}

func (mock *ruleRepoMock) SetPositionsCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
	Ids    []int64
} {
	mock.lockSetPositions.RLock()
	calls := mock.calls.SetPositions
	mock.lockSetPositions.RUnlock()
	return calls
}
