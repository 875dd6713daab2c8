package grammar

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ grammarRepo = &grammarRepoMock{}

type grammarRepoMock struct {
	CreateTemplateFunc       func(ctx context.Context, t domain.DeclensionTemplate) error
	AddDimensionFunc         func(ctx context.Context, langID uuid.UUID, d domain.DeclensionDimension) error
	ListTemplatesFunc        func(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionTemplate, error)
	UpdateTemplateFunc       func(ctx context.Context, t domain.DeclensionTemplate) error
	DeleteTemplateFunc       func(ctx context.Context, langID uuid.UUID, id int64) error
	DeleteDimensionFunc      func(ctx context.Context, langID uuid.UUID, id int64) error
	SetTemplatePositionsFunc func(ctx context.Context, langID uuid.UUID, ids []int64) error
	ListRulesFunc            func(ctx context.Context, langID uuid.UUID, typeID *int64) ([]domain.DeclensionRule, error)
	GetRuleFunc              func(ctx context.Context, langID uuid.UUID, id int64) (domain.DeclensionRule, error)
	CreateRuleFunc           func(ctx context.Context, rule domain.DeclensionRule) error
	UpdateRuleFunc           func(ctx context.Context, rule domain.DeclensionRule) error
	DeleteRuleFunc           func(ctx context.Context, langID uuid.UUID, id int64) error
	SetRulePositionsFunc     func(ctx context.Context, langID uuid.UUID, ids []int64) error
	ListSettingsFunc         func(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.CombinationSetting, error)
	UpsertSettingFunc        func(ctx context.Context, langID uuid.UUID, s domain.CombinationSetting) error
	ListFormsFunc            func(ctx context.Context, langID uuid.UUID, wordID int64) (domain.WordForms, error)
	UpsertFormFunc           func(ctx context.Context, langID uuid.UUID, n domain.DeclensionNode) error
	DeleteFormFunc           func(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) error

	calls struct {
		CreateTemplate []struct {
			Ctx context.Context
			T   domain.DeclensionTemplate
		}
		AddDimension []struct {
			Ctx    context.Context
			LangID uuid.UUID
			D      domain.DeclensionDimension
		}
		ListTemplates []struct {
			Ctx    context.Context
			LangID uuid.UUID
			TypeID int64
		}
		UpdateTemplate []struct {
			Ctx context.Context
			T   domain.DeclensionTemplate
		}
		DeleteTemplate []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		DeleteDimension []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		SetTemplatePositions []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Ids    []int64
		}
		ListRules []struct {
			Ctx    context.Context
			LangID uuid.UUID
			TypeID *int64
		}
		GetRule []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		CreateRule []struct {
			Ctx  context.Context
			Rule domain.DeclensionRule
		}
		UpdateRule []struct {
			Ctx  context.Context
			Rule domain.DeclensionRule
		}
		DeleteRule []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		SetRulePositions []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Ids    []int64
		}
		ListSettings []struct {
			Ctx    context.Context
			LangID uuid.UUID
			TypeID int64
		}
		UpsertSetting []struct {
			Ctx    context.Context
			LangID uuid.UUID
			S      domain.CombinationSetting
		}
		ListForms []struct {
			Ctx    context.Context
			LangID uuid.UUID
			WordID int64
		}
		UpsertForm []struct {
			Ctx    context.Context
			LangID uuid.UUID
			N      domain.DeclensionNode
		}
		DeleteForm []struct {
			Ctx    context.Context
			LangID uuid.UUID
			WordID int64
			Id     domain.CombinationID
		}
	}
	lockCreateTemplate       sync.RWMutex
	lockAddDimension         sync.RWMutex
	lockListTemplates        sync.RWMutex
	lockUpdateTemplate       sync.RWMutex
	lockDeleteTemplate       sync.RWMutex
	lockDeleteDimension      sync.RWMutex
	lockSetTemplatePositions sync.RWMutex
	lockListRules            sync.RWMutex
	lockGetRule              sync.RWMutex
	lockCreateRule           sync.RWMutex
	lockUpdateRule           sync.RWMutex
	lockDeleteRule           sync.RWMutex
	lockSetRulePositions     sync.RWMutex
	lockListSettings         sync.RWMutex
	lockUpsertSetting        sync.RWMutex
	lockListForms            sync.RWMutex
	lockUpsertForm           sync.RWMutex
	lockDeleteForm           sync.RWMutex
}

func (mock *grammarRepoMock) CreateTemplate(ctx context.Context, t domain.DeclensionTemplate) error {
	if mock.CreateTemplateFunc == nil {
		panic("grammarRepoMock.CreateTemplateFunc: method is nil but grammarRepo.CreateTemplate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.DeclensionTemplate
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreateTemplate.Lock()
	mock.calls.CreateTemplate = append(mock.calls.CreateTemplate, callInfo)
	mock.lockCreateTemplate.Unlock()
	return mock.CreateTemplateFunc(ctx, t)
}

func (mock *grammarRepoMock) CreateTemplateCalls() []struct {
	Ctx context.Context
	T   domain.DeclensionTemplate
} {
	mock.lockCreateTemplate.RLock()
	calls := mock.calls.CreateTemplate
	mock.lockCreateTemplate.RUnlock()
	return calls
}

func (mock *grammarRepoMock) AddDimension(ctx context.Context, langID uuid.UUID, d domain.DeclensionDimension) error {
	if mock.AddDimensionFunc == nil {
		panic("grammarRepoMock.AddDimensionFunc: method is nil but grammarRepo.AddDimension was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		D      domain.DeclensionDimension
	}{
		Ctx:    ctx,
		LangID: langID,
		D:      d,
	}
	mock.lockAddDimension.Lock()
	mock.calls.AddDimension = append(mock.calls.AddDimension, callInfo)
	mock.lockAddDimension.Unlock()
	return mock.AddDimensionFunc(ctx, langID, d)
}

func (mock *grammarRepoMock) AddDimensionCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	D      domain.DeclensionDimension
} {
	mock.lockAddDimension.RLock()
	calls := mock.calls.AddDimension
	mock.lockAddDimension.RUnlock()
	return calls
}

func (mock *grammarRepoMock) ListTemplates(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.DeclensionTemplate, error) {
	if mock.ListTemplatesFunc == nil {
		panic("grammarRepoMock.ListTemplatesFunc: method is nil but grammarRepo.ListTemplates was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		TypeID int64
	}{
		Ctx:    ctx,
		LangID: langID,
		TypeID: typeID,
	}
	mock.lockListTemplates.Lock()
	mock.calls.ListTemplates = append(mock.calls.ListTemplates, callInfo)
	mock.lockListTemplates.Unlock()
	return mock.ListTemplatesFunc(ctx, langID, typeID)
}

func (mock *grammarRepoMock) ListTemplatesCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	TypeID int64
} {
	mock.lockListTemplates.RLock()
	calls := mock.calls.ListTemplates
	mock.lockListTemplates.RUnlock()
	return calls
}

func (mock *grammarRepoMock) UpdateTemplate(ctx context.Context, t domain.DeclensionTemplate) error {
	if mock.UpdateTemplateFunc == nil {
		panic("grammarRepoMock.UpdateTemplateFunc: method is nil but grammarRepo.UpdateTemplate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.DeclensionTemplate
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpdateTemplate.Lock()
	mock.calls.UpdateTemplate = append(mock.calls.UpdateTemplate, callInfo)
	mock.lockUpdateTemplate.Unlock()
	return mock.UpdateTemplateFunc(ctx, t)
}

func (mock *grammarRepoMock) UpdateTemplateCalls() []struct {
	Ctx context.Context
	T   domain.DeclensionTemplate
} {
	mock.lockUpdateTemplate.RLock()
	calls := mock.calls.UpdateTemplate
	mock.lockUpdateTemplate.RUnlock()
	return calls
}

func (mock *grammarRepoMock) DeleteTemplate(ctx context.Context, langID uuid.UUID, id int64) error {
	if mock.DeleteTemplateFunc == nil {
		panic("grammarRepoMock.DeleteTemplateFunc: method is nil but grammarRepo.DeleteTemplate was just called")
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
	mock.lockDeleteTemplate.Lock()
	mock.calls.DeleteTemplate = append(mock.calls.DeleteTemplate, callInfo)
	mock.lockDeleteTemplate.Unlock()
	return mock.DeleteTemplateFunc(ctx, langID, id)
}

func (mock *grammarRepoMock) DeleteTemplateCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockDeleteTemplate.RLock()
	calls := mock.calls.DeleteTemplate
	mock.lockDeleteTemplate.RUnlock()
	return calls
}

func (mock *grammarRepoMock) DeleteDimension(ctx context.Context, langID uuid.UUID, id int64) error {
	if mock.DeleteDimensionFunc == nil {
		panic("grammarRepoMock.DeleteDimensionFunc: method is nil but grammarRepo.DeleteDimension was just called")
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
	mock.lockDeleteDimension.Lock()
	mock.calls.DeleteDimension = append(mock.calls.DeleteDimension, callInfo)
	mock.lockDeleteDimension.Unlock()
	return mock.DeleteDimensionFunc(ctx, langID, id)
}

func (mock *grammarRepoMock) DeleteDimensionCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockDeleteDimension.RLock()
	calls := mock.calls.DeleteDimension
	mock.lockDeleteDimension.RUnlock()
	return calls
}

func (mock *grammarRepoMock) SetTemplatePositions(ctx context.Context, langID uuid.UUID, ids []int64) error {
	if mock.SetTemplatePositionsFunc == nil {
		panic("grammarRepoMock.SetTemplatePositionsFunc: method is nil but grammarRepo.SetTemplatePositions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Ids    []int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Ids:    ids,
	}
	mock.lockSetTemplatePositions.Lock()
	mock.calls.SetTemplatePositions = append(mock.calls.SetTemplatePositions, callInfo)
	mock.lockSetTemplatePositions.Unlock()
	return mock.SetTemplatePositionsFunc(ctx, langID, ids)
}

func (mock *grammarRepoMock) SetTemplatePositionsCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Ids    []int64
} {
	mock.lockSetTemplatePositions.RLock()
	calls := mock.calls.SetTemplatePositions
	mock.lockSetTemplatePositions.RUnlock()
	return calls
}

func (mock *grammarRepoMock) ListRules(ctx context.Context, langID uuid.UUID, typeID *int64) ([]domain.DeclensionRule, error) {
	if mock.ListRulesFunc == nil {
		panic("grammarRepoMock.ListRulesFunc: method is nil but grammarRepo.ListRules was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		TypeID *int64
	}{
		Ctx:    ctx,
		LangID: langID,
		TypeID: typeID,
	}
	mock.lockListRules.Lock()
	mock.calls.ListRules = append(mock.calls.ListRules, callInfo)
	mock.lockListRules.Unlock()
	return mock.ListRulesFunc(ctx, langID, typeID)
}

func (mock *grammarRepoMock) ListRulesCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	TypeID *int64
} {
	mock.lockListRules.RLock()
	calls := mock.calls.ListRules
	mock.lockListRules.RUnlock()
	return calls
}

func (mock *grammarRepoMock) GetRule(ctx context.Context, langID uuid.UUID, id int64) (domain.DeclensionRule, error) {
	if mock.GetRuleFunc == nil {
		panic("grammarRepoMock.GetRuleFunc: method is nil but grammarRepo.GetRule was just called")
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
	mock.lockGetRule.Lock()
	mock.calls.GetRule = append(mock.calls.GetRule, callInfo)
	mock.lockGetRule.Unlock()
	return mock.GetRuleFunc(ctx, langID, id)
}

func (mock *grammarRepoMock) GetRuleCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockGetRule.RLock()
	calls := mock.calls.GetRule
	mock.lockGetRule.RUnlock()
	return calls
}

func (mock *grammarRepoMock) CreateRule(ctx context.Context, rule domain.DeclensionRule) error {
	if mock.CreateRuleFunc == nil {
		panic("grammarRepoMock.CreateRuleFunc: method is nil but grammarRepo.CreateRule was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Rule domain.DeclensionRule
	}{
		Ctx:  ctx,
		Rule: rule,
	}
	mock.lockCreateRule.Lock()
	mock.calls.CreateRule = append(mock.calls.CreateRule, callInfo)
	mock.lockCreateRule.Unlock()
	return mock.CreateRuleFunc(ctx, rule)
}

func (mock *grammarRepoMock) CreateRuleCalls() []struct {
	Ctx  context.Context
	Rule domain.DeclensionRule
} {
	mock.lockCreateRule.RLock()
	calls := mock.calls.CreateRule
	mock.lockCreateRule.RUnlock()
	return calls
}

func (mock *grammarRepoMock) UpdateRule(ctx context.Context, rule domain.DeclensionRule) error {
	if mock.UpdateRuleFunc == nil {
		panic("grammarRepoMock.UpdateRuleFunc: method is nil but grammarRepo.UpdateRule was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Rule domain.DeclensionRule
	}{
		Ctx:  ctx,
		Rule: rule,
	}
	mock.lockUpdateRule.Lock()
	mock.calls.UpdateRule = append(mock.calls.UpdateRule, callInfo)
	mock.lockUpdateRule.Unlock()
	return mock.UpdateRuleFunc(ctx, rule)
}

func (mock *grammarRepoMock) UpdateRuleCalls() []struct {
	Ctx  context.Context
	Rule domain.DeclensionRule
} {
	mock.lockUpdateRule.RLock()
	calls := mock.calls.UpdateRule
	mock.lockUpdateRule.RUnlock()
	return calls
}

func (mock *grammarRepoMock) DeleteRule(ctx context.Context, langID uuid.UUID, id int64) error {
	if mock.DeleteRuleFunc == nil {
		panic("grammarRepoMock.DeleteRuleFunc: method is nil but grammarRepo.DeleteRule was just called")
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
	mock.lockDeleteRule.Lock()
	mock.calls.DeleteRule = append(mock.calls.DeleteRule, callInfo)
	mock.lockDeleteRule.Unlock()
	return mock.DeleteRuleFunc(ctx, langID, id)
}

func (mock *grammarRepoMock) DeleteRuleCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockDeleteRule.RLock()
	calls := mock.calls.DeleteRule
	mock.lockDeleteRule.RUnlock()
	return calls
}

func (mock *grammarRepoMock) SetRulePositions(ctx context.Context, langID uuid.UUID, ids []int64) error {
	if mock.SetRulePositionsFunc == nil {
		panic("grammarRepoMock.SetRulePositionsFunc: method is nil but grammarRepo.SetRulePositions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Ids    []int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Ids:    ids,
	}
	mock.lockSetRulePositions.Lock()
	mock.calls.SetRulePositions = append(mock.calls.SetRulePositions, callInfo)
	mock.lockSetRulePositions.Unlock()
	return mock.SetRulePositionsFunc(ctx, langID, ids)
}

func (mock *grammarRepoMock) SetRulePositionsCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Ids    []int64
} {
	mock.lockSetRulePositions.RLock()
	calls := mock.calls.SetRulePositions
	mock.lockSetRulePositions.RUnlock()
	return calls
}

func (mock *grammarRepoMock) ListSettings(ctx context.Context, langID uuid.UUID, typeID int64) ([]domain.CombinationSetting, error) {
	if mock.ListSettingsFunc == nil {
		panic("grammarRepoMock.ListSettingsFunc: method is nil but grammarRepo.ListSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		TypeID int64
	}{
		Ctx:    ctx,
		LangID: langID,
		TypeID: typeID,
	}
	mock.lockListSettings.Lock()
	mock.calls.ListSettings = append(mock.calls.ListSettings, callInfo)
	mock.lockListSettings.Unlock()
	return mock.ListSettingsFunc(ctx, langID, typeID)
}

func (mock *grammarRepoMock) ListSettingsCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	TypeID int64
} {
	mock.lockListSettings.RLock()
	calls := mock.calls.ListSettings
	mock.lockListSettings.RUnlock()
	return calls
}

func (mock *grammarRepoMock) UpsertSetting(ctx context.Context, langID uuid.UUID, s domain.CombinationSetting) error {
	if mock.UpsertSettingFunc == nil {
		panic("grammarRepoMock.UpsertSettingFunc: method is nil but grammarRepo.UpsertSetting was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		S      domain.CombinationSetting
	}{
		Ctx:    ctx,
		LangID: langID,
		S:      s,
	}
	mock.lockUpsertSetting.Lock()
	mock.calls.UpsertSetting = append(mock.calls.UpsertSetting, callInfo)
	mock.lockUpsertSetting.Unlock()
	return mock.UpsertSettingFunc(ctx, langID, s)
}

func (mock *grammarRepoMock) UpsertSettingCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	S      domain.CombinationSetting
} {
	mock.lockUpsertSetting.RLock()
	calls := mock.calls.UpsertSetting
	mock.lockUpsertSetting.RUnlock()
	return calls
}

func (mock *grammarRepoMock) ListForms(ctx context.Context, langID uuid.UUID, wordID int64) (domain.WordForms, error) {
	if mock.ListFormsFunc == nil {
		panic("grammarRepoMock.ListFormsFunc: method is nil but grammarRepo.ListForms was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		WordID int64
	}{
		Ctx:    ctx,
		LangID: langID,
		WordID: wordID,
	}
	mock.lockListForms.Lock()
	mock.calls.ListForms = append(mock.calls.ListForms, callInfo)
	mock.lockListForms.Unlock()
	return mock.ListFormsFunc(ctx, langID, wordID)
}

func (mock *grammarRepoMock) ListFormsCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	WordID int64
} {
	mock.lockListForms.RLock()
	calls := mock.calls.ListForms
	mock.lockListForms.RUnlock()
	return calls
}

func (mock *grammarRepoMock) UpsertForm(ctx context.Context, langID uuid.UUID, n domain.DeclensionNode) error {
	if mock.UpsertFormFunc == nil {
		panic("grammarRepoMock.UpsertFormFunc: method is nil but grammarRepo.UpsertForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		N      domain.DeclensionNode
	}{
		Ctx:    ctx,
		LangID: langID,
		N:      n,
	}
	mock.lockUpsertForm.Lock()
	mock.calls.UpsertForm = append(mock.calls.UpsertForm, callInfo)
	mock.lockUpsertForm.Unlock()
	return mock.UpsertFormFunc(ctx, langID, n)
}

func (mock *grammarRepoMock) UpsertFormCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	N      domain.DeclensionNode
} {
	mock.lockUpsertForm.RLock()
	calls := mock.calls.UpsertForm
	mock.lockUpsertForm.RUnlock()
	return calls
}

func (mock *grammarRepoMock) DeleteForm(ctx context.Context, langID uuid.UUID, wordID int64, id domain.CombinationID) error {
	if mock.DeleteFormFunc == nil {
		panic("grammarRepoMock.DeleteFormFunc: method is nil but grammarRepo.DeleteForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		WordID int64
		Id     domain.CombinationID
	}{
		Ctx:    ctx,
		LangID: langID,
		WordID: wordID,
		Id:     id,
	}
	mock.lockDeleteForm.Lock()
	mock.calls.DeleteForm = append(mock.calls.DeleteForm, callInfo)
	mock.lockDeleteForm.Unlock()
	return mock.DeleteFormFunc(ctx, langID, wordID, id)
}

func (mock *grammarRepoMock) DeleteFormCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	WordID int64
	Id     domain.CombinationID
} {
	mock.lockDeleteForm.RLock()
	calls := mock.calls.DeleteForm
	mock.lockDeleteForm.RUnlock()
	return calls
}
