package report

import (
	"context"
	"sync"
)

var _ snapshotter = &snapshotterMock{}

type snapshotterMock struct {
	RunInSnapshotFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInSnapshot []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInSnapshot sync.RWMutex
}

func (mock *snapshotterMock) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInSnapshotFunc == nil {
		panic("snapshotterMock.RunInSnapshotFunc: method is nil but snapshotter.RunInSnapshot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInSnapshot.Lock()
	mock.calls.RunInSnapshot = append(mock.calls.RunInSnapshot, callInfo)
	mock.lockRunInSnapshot.Unlock()
	return mock.RunInSnapshotFunc(ctx, fn)
}

func (mock *snapshotterMock) RunInSnapshotCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInSnapshot.RLock()
	calls := mock.calls.RunInSnapshot
	mock.lockRunInSnapshot.RUnlock()
	return calls
}
