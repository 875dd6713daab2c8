package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/service/phonology"
)

var _ phonologyService = &phonologyServiceMock{}

type phonologyServiceMock struct {
	ListRulesFunc   func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)
	AddRuleFunc     func(ctx context.Context, input phonology.AddRuleInput) (domain.PronunciationRule, error)
	UpdateRuleFunc  func(ctx context.Context, input phonology.UpdateRuleInput) (domain.PronunciationRule, error)
	DeleteRuleFunc  func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error
	MoveRuleFunc    func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64, dir domain.Direction) ([]domain.PronunciationRule, error)
	LookaroundsFunc func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error)
	PronounceFunc   func(ctx context.Context, input phonology.PronounceInput) (phonology.PronounceResult, error)

	calls struct {
		ListRules []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
		}
		AddRule []struct {
			Ctx   context.Context
			Input phonology.AddRuleInput
		}
		UpdateRule []struct {
			Ctx   context.Context
			Input phonology.UpdateRuleInput
		}
		DeleteRule []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
			Id     int64
		}
		MoveRule []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
			Id     int64
			Dir    domain.Direction
		}
		Lookarounds []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
		}
		Pronounce []struct {
			Ctx   context.Context
			Input phonology.PronounceInput
		}
	}
	lockListRules   sync.RWMutex
	lockAddRule     sync.RWMutex
	lockUpdateRule  sync.RWMutex
	lockDeleteRule  sync.RWMutex
	lockMoveRule    sync.RWMutex
	lockLookarounds sync.RWMutex
	lockPronounce   sync.RWMutex
}

func (mock *phonologyServiceMock) ListRules(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error) {
	if mock.ListRulesFunc == nil {
		panic("phonologyServiceMock.ListRulesFunc: method is nil but phonologyService.ListRules was just called")
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
	mock.lockListRules.Lock()
	mock.calls.ListRules = append(mock.calls.ListRules, callInfo)
	mock.lockListRules.Unlock()
	return mock.ListRulesFunc(ctx, langID, kind)
}

func (mock *phonologyServiceMock) ListRulesCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
} {
	mock.lockListRules.RLock()
	calls := mock.calls.ListRules
	mock.lockListRules.RUnlock()
	return calls
}

func (mock *phonologyServiceMock) AddRule(ctx context.Context, input phonology.AddRuleInput) (domain.PronunciationRule, error) {
	if mock.AddRuleFunc == nil {
		panic("phonologyServiceMock.AddRuleFunc: method is nil but phonologyService.AddRule was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input phonology.AddRuleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddRule.Lock()
	mock.calls.AddRule = append(mock.calls.AddRule, callInfo)
	mock.lockAddRule.Unlock()
	return mock.AddRuleFunc(ctx, input)
}

func (mock *phonologyServiceMock) AddRuleCalls() []struct {
	Ctx   context.Context
	Input phonology.AddRuleInput
} {
	mock.lockAddRule.RLock()
	calls := mock.calls.AddRule
	mock.lockAddRule.RUnlock()
	return calls
}

func (mock *phonologyServiceMock) UpdateRule(ctx context.Context, input phonology.UpdateRuleInput) (domain.PronunciationRule, error) {
	if mock.UpdateRuleFunc == nil {
		panic("phonologyServiceMock.UpdateRuleFunc: method is nil but phonologyService.UpdateRule was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input phonology.UpdateRuleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateRule.Lock()
	mock.calls.UpdateRule = append(mock.calls.UpdateRule, callInfo)
	mock.lockUpdateRule.Unlock()
	return mock.UpdateRuleFunc(ctx, input)
}

func (mock *phonologyServiceMock) UpdateRuleCalls() []struct {
	Ctx   context.Context
	Input phonology.UpdateRuleInput
} {
	mock.lockUpdateRule.RLock()
	calls := mock.calls.UpdateRule
	mock.lockUpdateRule.RUnlock()
	return calls
}

func (mock *phonologyServiceMock) DeleteRule(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64) error {
	if mock.DeleteRuleFunc == nil {
		panic("phonologyServiceMock.DeleteRuleFunc: method is nil but phonologyService.DeleteRule was just called")
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
	mock.lockDeleteRule.Lock()
	mock.calls.DeleteRule = append(mock.calls.DeleteRule, callInfo)
	mock.lockDeleteRule.Unlock()
	return mock.DeleteRuleFunc(ctx, langID, kind, id)
}

func (mock *phonologyServiceMock) DeleteRuleCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
	Id     int64
} {
	mock.lockDeleteRule.RLock()
	calls := mock.calls.DeleteRule
	mock.lockDeleteRule.RUnlock()
	return calls
}

func (mock *phonologyServiceMock) MoveRule(ctx context.Context, langID uuid.UUID, kind domain.GuideKind, id int64, dir domain.Direction) ([]domain.PronunciationRule, error) {
	if mock.MoveRuleFunc == nil {
		panic("phonologyServiceMock.MoveRuleFunc: method is nil but phonologyService.MoveRule was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Kind   domain.GuideKind
		Id     int64
		Dir    domain.Direction
	}{
		Ctx:    ctx,
		LangID: langID,
		Kind:   kind,
		Id:     id,
		Dir:    dir,
	}
	mock.lockMoveRule.Lock()
	mock.calls.MoveRule = append(mock.calls.MoveRule, callInfo)
	mock.lockMoveRule.Unlock()
	return mock.MoveRuleFunc(ctx, langID, kind, id, dir)
}

func (mock *phonologyServiceMock) MoveRuleCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
	Id     int64
	Dir    domain.Direction
} {
	mock.lockMoveRule.RLock()
	calls := mock.calls.MoveRule
	mock.lockMoveRule.RUnlock()
	return calls
}

func (mock *phonologyServiceMock) Lookarounds(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) ([]domain.PronunciationRule, error) {
	if mock.LookaroundsFunc == nil {
		panic("phonologyServiceMock.LookaroundsFunc: method is nil but phonologyService.Lookarounds was just called")
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
	mock.lockLookarounds.Lock()
	mock.calls.Lookarounds = append(mock.calls.Lookarounds, callInfo)
	mock.lockLookarounds.Unlock()
	return mock.LookaroundsFunc(ctx, langID, kind)
}

func (mock *phonologyServiceMock) LookaroundsCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
} {
	mock.lockLookarounds.RLock()
	calls := mock.calls.Lookarounds
	mock.lockLookarounds.RUnlock()
	return calls
}

func (mock *phonologyServiceMock) Pronounce(ctx context.Context, input phonology.PronounceInput) (phonology.PronounceResult, error) {
	if mock.PronounceFunc == nil {
		panic("phonologyServiceMock.PronounceFunc: method is nil but phonologyService.Pronounce was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input phonology.PronounceInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockPronounce.Lock()
	mock.calls.Pronounce = append(mock.calls.Pronounce, callInfo)
	mock.lockPronounce.Unlock()
	return mock.PronounceFunc(ctx, input)
}

func (mock *phonologyServiceMock) PronounceCalls() []struct {
	Ctx   context.Context
	Input phonology.PronounceInput
} {
	mock.lockPronounce.RLock()
	calls := mock.calls.Pronounce
	mock.lockPronounce.RUnlock()
	return calls
}
