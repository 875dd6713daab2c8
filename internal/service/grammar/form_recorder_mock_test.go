package grammar

import (
	"sync"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ formRecorder = &formRecorderMock{}

type formRecorderMock struct {
	RecordDeclensionFunc func(source domain.FormSource)

	calls struct {
		RecordDeclension []struct {
			Source domain.FormSource
		}
	}
	lockRecordDeclension sync.RWMutex
}

func (mock *formRecorderMock) RecordDeclension(source domain.FormSource) {
	if mock.RecordDeclensionFunc == nil {
		panic("formRecorderMock.RecordDeclensionFunc: method is nil but formRecorder.RecordDeclension was just called")
	}
	callInfo := struct {
		Source domain.FormSource
	}{
		Source: source,
	}
	mock.lockRecordDeclension.Lock()
	mock.calls.RecordDeclension = append(mock.calls.RecordDeclension, callInfo)
	mock.lockRecordDeclension.Unlock()
	mock.RecordDeclensionFunc(source)
}

func (mock *formRecorderMock) RecordDeclensionCalls() []struct {
	Source domain.FormSource
} {
	mock.lockRecordDeclension.RLock()
	calls := mock.calls.RecordDeclension
	mock.lockRecordDeclension.RUnlock()
	return calls
}
