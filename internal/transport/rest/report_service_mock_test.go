package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	GenerateFunc func(ctx context.Context, langID uuid.UUID) (report.Report, error)

	calls struct {
		Generate []struct {
			Ctx    context.Context
			LangID uuid.UUID
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *reportServiceMock) Generate(ctx context.Context, langID uuid.UUID) (report.Report, error) {
	if mock.GenerateFunc == nil {
		panic("reportServiceMock.GenerateFunc: method is nil but reportService.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
	}{
		Ctx:    ctx,
		LangID: langID,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, langID)
}

func (mock *reportServiceMock) GenerateCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
