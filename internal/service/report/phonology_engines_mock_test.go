package report

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
	"github.com/heartmarshall/conlang-backend/internal/engine/pronunciation"
)

var _ phonologyEngines = &phonologyEnginesMock{}

type phonologyEnginesMock struct {
	BuildEngineFunc func(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (*pronunciation.Engine, domain.PhonologyGuide, error)

	calls struct {
		BuildEngine []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Kind   domain.GuideKind
		}
	}
	lockBuildEngine sync.RWMutex
}

func (mock *phonologyEnginesMock) BuildEngine(ctx context.Context, langID uuid.UUID, kind domain.GuideKind) (*pronunciation.Engine, domain.PhonologyGuide, error) {
	if mock.BuildEngineFunc == nil {
		panic("phonologyEnginesMock.BuildEngineFunc: method is nil but phonologyEngines.BuildEngine was just called")
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
	mock.lockBuildEngine.Lock()
	mock.calls.BuildEngine = append(mock.calls.BuildEngine, callInfo)
	mock.lockBuildEngine.Unlock()
	return mock.BuildEngineFunc(ctx, langID, kind)
}

func (mock *phonologyEnginesMock) BuildEngineCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Kind   domain.GuideKind
} {
	mock.lockBuildEngine.RLock()
	calls := mock.calls.BuildEngine
	mock.lockBuildEngine.RUnlock()
	return calls
}
