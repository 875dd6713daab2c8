package report

import (
	"sync"
	"time"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ reportRecorder = &reportRecorderMock{}

type reportRecorderMock struct {
	RecordPronunciationFunc func(kind domain.GuideKind, outcome domain.PronunciationOutcome)
	ObserveReportFunc       func(words int, d time.Duration)

	calls struct {
		RecordPronunciation []struct {
			Kind    domain.GuideKind
			Outcome domain.PronunciationOutcome
		}
		ObserveReport []struct {
			Words int
			D     time.Duration
		}
	}
	lockRecordPronunciation sync.RWMutex
	lockObserveReport       sync.RWMutex
}

func (mock *reportRecorderMock) RecordPronunciation(kind domain.GuideKind, outcome domain.PronunciationOutcome) {
	if mock.RecordPronunciationFunc == nil {
		panic("reportRecorderMock.RecordPronunciationFunc: method is nil but reportRecorder.RecordPronunciation was just called")
	}
	callInfo := struct {
		Kind    domain.GuideKind
		Outcome domain.PronunciationOutcome
	}{
		Kind:    kind,
		Outcome: outcome,
	}
	mock.lockRecordPronunciation.Lock()
	mock.calls.RecordPronunciation = append(mock.calls.RecordPronunciation, callInfo)
	mock.lockRecordPronunciation.Unlock()
	mock.RecordPronunciationFunc(kind, outcome)
}

func (mock *reportRecorderMock) RecordPronunciationCalls() []struct {
	Kind    domain.GuideKind
	Outcome domain.PronunciationOutcome
} {
	mock.lockRecordPronunciation.RLock()
	calls := mock.calls.RecordPronunciation
	mock.lockRecordPronunciation.RUnlock()
	return calls
}

func (mock *reportRecorderMock) ObserveReport(words int, d time.Duration) {
	if mock.ObserveReportFunc == nil {
		panic("reportRecorderMock.ObserveReportFunc: method is nil but reportRecorder.ObserveReport was just called")
	}
	callInfo := struct {
		Words int
		D     time.Duration
	}{
		Words: words,
		D:     d,
	}
	mock.lockObserveReport.Lock()
	mock.calls.ObserveReport = append(mock.calls.ObserveReport, callInfo)
	mock.lockObserveReport.Unlock()
	mock.ObserveReportFunc(words, d)
}

func (mock *reportRecorderMock) ObserveReportCalls() []struct {
	Words int
	D     time.Duration
} {
	mock.lockObserveReport.RLock()
	calls := mock.calls.ObserveReport
	mock.lockObserveReport.RUnlock()
	return calls
}
