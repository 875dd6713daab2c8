package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/service/language"
)

var _ languageService = &languageServiceMock{}

type languageServiceMock struct {
	CreateLanguageFunc func(ctx context.Context, input language.CreateLanguageInput) (*domain.Language, error)
	GetLanguageFunc    func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListLanguagesFunc  func(ctx context.Context) ([]domain.Language, error)
	UpdateLanguageFunc func(ctx context.Context, input language.UpdateLanguageInput) (*domain.Language, error)
	DeleteLanguageFunc func(ctx context.Context, id uuid.UUID) error
	GetGuideFunc       func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error)
	UpdateGuideFunc    func(ctx context.Context, input language.UpdateGuideInput) (domain.PhonologyGuide, error)

	calls struct {
		CreateLanguage []struct {
			Ctx   context.Context
			Input language.CreateLanguageInput
		}
		GetLanguage []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListLanguages []struct {
			Ctx context.Context
		}
		UpdateLanguage []struct {
			Ctx   context.Context
			Input language.UpdateLanguageInput
		}
		DeleteLanguage []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetGuide []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
		}
		UpdateGuide []struct {
			Ctx   context.Context
			Input language.UpdateGuideInput
		}
	}
	lockCreateLanguage sync.RWMutex
	lockGetLanguage    sync.RWMutex
	lockListLanguages  sync.RWMutex
	lockUpdateLanguage sync.RWMutex
	lockDeleteLanguage sync.RWMutex
	lockGetGuide       sync.RWMutex
	lockUpdateGuide    sync.RWMutex
}

func (mock *languageServiceMock) CreateLanguage(ctx context.Context, input language.CreateLanguageInput) (*domain.Language, error) {
	if mock.CreateLanguageFunc == nil {
		panic("languageServiceMock.CreateLanguageFunc: method is nil but languageService.CreateLanguage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input language.CreateLanguageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateLanguage.Lock()
	mock.calls.CreateLanguage = append(mock.calls.CreateLanguage, callInfo)
	mock.lockCreateLanguage.Unlock()
	return mock.CreateLanguageFunc(ctx, input)
}

func (mock *languageServiceMock) CreateLanguageCalls() []struct {
	Ctx   context.Context
	Input language.CreateLanguageInput
} {
	mock.lockCreateLanguage.RLock()
	calls := mock.calls.CreateLanguage
	mock.lockCreateLanguage.RUnlock()
	return calls
}

func (mock *languageServiceMock) GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if mock.GetLanguageFunc == nil {
		panic("languageServiceMock.GetLanguageFunc: method is nil but languageService.GetLanguage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetLanguage.Lock()
	mock.calls.GetLanguage = append(mock.calls.GetLanguage, callInfo)
	mock.lockGetLanguage.Unlock()
	return mock.GetLanguageFunc(ctx, id)
}

func (mock *languageServiceMock) GetLanguageCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetLanguage.RLock()
	calls := mock.calls.GetLanguage
	mock.lockGetLanguage.RUnlock()
	return calls
}

func (mock *languageServiceMock) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	if mock.ListLanguagesFunc == nil {
		panic("languageServiceMock.ListLanguagesFunc: method is nil but languageService.ListLanguages was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListLanguages.Lock()
	mock.calls.ListLanguages = append(mock.calls.ListLanguages, callInfo)
	mock.lockListLanguages.Unlock()
	return mock.ListLanguagesFunc(ctx)
}

func (mock *languageServiceMock) ListLanguagesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListLanguages.RLock()
	calls := mock.calls.ListLanguages
	mock.lockListLanguages.RUnlock()
	return calls
}

func (mock *languageServiceMock) UpdateLanguage(ctx context.Context, input language.UpdateLanguageInput) (*domain.Language, error) {
	if mock.UpdateLanguageFunc == nil {
		panic("languageServiceMock.UpdateLanguageFunc: method is nil but languageService.UpdateLanguage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input language.UpdateLanguageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateLanguage.Lock()
	mock.calls.UpdateLanguage = append(mock.calls.UpdateLanguage, callInfo)
	mock.lockUpdateLanguage.Unlock()
	return mock.UpdateLanguageFunc(ctx, input)
}

func (mock *languageServiceMock) UpdateLanguageCalls() []struct {
	Ctx   context.Context
	Input language.UpdateLanguageInput
} {
	mock.lockUpdateLanguage.RLock()
	calls := mock.calls.UpdateLanguage
	mock.lockUpdateLanguage.RUnlock()
	return calls
}

func (mock *languageServiceMock) DeleteLanguage(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteLanguageFunc == nil {
		panic("languageServiceMock.DeleteLanguageFunc: method is nil but languageService.DeleteLanguage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteLanguage.Lock()
	mock.calls.DeleteLanguage = append(mock.calls.DeleteLanguage, callInfo)
	mock.lockDeleteLanguage.Unlock()
	return mock.DeleteLanguageFunc(ctx, id)
}

func (mock *languageServiceMock) DeleteLanguageCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteLanguage.RLock()
	calls := mock.calls.DeleteLanguage
	mock.lockDeleteLanguage.RUnlock()
	return calls
}

func (mock *languageServiceMock) GetGuide(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (domain.PhonologyGuide, error) {
	if mock.GetGuideFunc == nil {
		panic("languageServiceMock.GetGuideFunc: method is nil but languageService.GetGuide was just called")
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

func (mock *languageServiceMock) GetGuideCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
} {
	mock.lockGetGuide.RLock()
	calls := mock.calls.GetGuide
	mock.lockGetGuide.RUnlock()
	return calls
}

func (mock *languageServiceMock) UpdateGuide(ctx context.Context, input language.UpdateGuideInput) (domain.PhonologyGuide, error) {
	if mock.UpdateGuideFunc == nil {
		panic("languageServiceMock.UpdateGuideFunc: method is nil but languageService.UpdateGuide was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input language.UpdateGuideInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateGuide.Lock()
	mock.calls.UpdateGuide = append(mock.calls.UpdateGuide, callInfo)
	mock.lockUpdateGuide.Unlock()
	return mock.UpdateGuideFunc(ctx, input)
}

func (mock *languageServiceMock) UpdateGuideCalls() []struct {
	Ctx   context.Context
	Input language.UpdateGuideInput
} {
	mock.lockUpdateGuide.RLock()
	calls := mock.calls.UpdateGuide
	mock.lockUpdateGuide.RUnlock()
	return calls
}
