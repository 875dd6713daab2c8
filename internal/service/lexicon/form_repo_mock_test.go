package lexicon

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ formRepo = &formRepoMock{}

type formRepoMock struct {
	DeleteFormsByTypeFunc func(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error)

	calls struct {
		DeleteFormsByType []struct {
			Ctx    context.Context
			LangID uuid.UUID
			TypeID int64
		}
	}
	lockDeleteFormsByType sync.RWMutex
}

func (mock *formRepoMock) DeleteFormsByType(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error) {
	if mock.DeleteFormsByTypeFunc == nil {
		panic("formRepoMock.DeleteFormsByTypeFunc: method is nil but formRepo.DeleteFormsByType was just called")
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
	mock.lockDeleteFormsByType.Lock()
	mock.calls.DeleteFormsByType = append(mock.calls.DeleteFormsByType, callInfo)
	mock.lockDeleteFormsByType.Unlock()
	return mock.DeleteFormsByTypeFunc(ctx, langID, typeID)
}

func (mock *formRepoMock) DeleteFormsByTypeCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	TypeID int64
} {
	mock.lockDeleteFormsByType.RLock()
	calls := mock.calls.DeleteFormsByType
	mock.lockDeleteFormsByType.RUnlock()
	return calls
}
