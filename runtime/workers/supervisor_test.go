package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"hearing-hub/contract"
	"hearing-hub/mocks"
	"hearing-hub/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const restartInterval = 50 * time.Millisecond

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, restartInterval)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	// Run returns once the context is done
	sup.Add(workerMock).Run(ctx)

	req.GreaterOrEqual(calls.Load(), int32(2))
}

func TestSupervisor_RestartOnError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker failing once then succeeding
	first := workerMock.EXPECT().Run(gomock.Any()).Return(fmt.Errorf("listener closed")).Times(1)
	workerMock.EXPECT().Run(gomock.Any()).Return(nil).After(first).Times(1)

	done := make(chan struct{})
	go func() {
		NewSupervisor(log, restartInterval).Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should have restarted the worker once and stopped")
	}
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log, restartInterval)

	// Given a channel to notify when Run() terminated
	done := make(chan struct{})

	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then supervisor detected a success, returned nil and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	started := make(chan struct{})
	workerMock.EXPECT().Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		}).Times(1)

	sup := NewSupervisor(log, restartInterval)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	<-started
	sup.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should stop its workers")
	}
}

type flakyWorker struct {
	name  string
	calls atomic.Int32
}

func (w *flakyWorker) Name() string { return w.name }

// Run panics, then fails, then finishes.
func (w *flakyWorker) Run(ctx context.Context) error {
	switch w.calls.Add(1) {
	case 1:
		panic("boom")
	case 2:
		return fmt.Errorf("listener closed")
	default:
		return nil
	}
}

func TestSupervisor_Counts_Restarts_By_Cause(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	worker := &flakyWorker{name: "flaky-" + t.Name()}

	NewSupervisor(log, restartInterval).Add(worker).Run(context.Background())

	req.Equal(int32(3), worker.calls.Load())
	req.Equal(float64(1), testutil.ToFloat64(observability.WorkerRestarts.WithLabelValues(worker.name, "panic")))
	req.Equal(float64(1), testutil.ToFloat64(observability.WorkerRestarts.WithLabelValues(worker.name, "error")))
	req.Equal(float64(0), testutil.ToFloat64(observability.WorkersRunning.WithLabelValues(worker.name)))
}

func TestGetWorkerName(t *testing.T) {
	req := require.New(t)

	req.Equal("flaky", contract.GetWorkerName(&flakyWorker{name: "flaky"}))
	req.Equal("MockWorker", contract.GetWorkerName(mocks.NewMockWorker(gomock.NewController(t))))
	req.Equal("heartbeat", contract.GetWorkerName(NewHeartbeatWorker(nil, nil, time.Second)))
}
