package workers

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hearing-hub/contract"
	"hearing-hub/errors"
	"hearing-hub/observability"
)

// Supervisor keeps the hub's long running parts alive: the HTTP and gRPC
// listeners, the heartbeat and the invitation sweep.
//
// A worker that panics or returns an error is started again after
// restartInterval. A worker returning nil is done for good. Run returns once
// every worker has returned, which happens at the latest when ctx is done.
type Supervisor struct {
	Cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	workers         []contract.Worker
	restartInterval time.Duration
}

var _ contract.ISupervisor = (*Supervisor)(nil)

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartInterval: restartInterval}
}

func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start supervises worker in its own goroutine until it returns nil or ctx is done.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	name := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()
		for attempt := 1; ; attempt++ {
			err := s.runOnce(ctx, worker, name)
			switch {
			case err == nil:
				s.log.Info("Worker finished", "worker", name)
				return
			case ctx.Err() != nil:
				s.log.Info("Worker stopped", "worker", name)
				return
			}

			cause := "error"
			if stderrors.Is(err, errors.ErrWorkerPanic) {
				cause = "panic"
			}
			observability.WorkerRestarts.WithLabelValues(name, cause).Inc()
			s.log.Warn("Worker failed, restarting", "worker", name, "attempt", attempt,
				"cause", cause, "error", err, "in", s.restartInterval)

			select {
			case <-ctx.Done():
				s.log.Info("Worker stopped", "worker", name)
				return
			case <-time.After(s.restartInterval):
			}
		}
	}()
}

// runOnce turns a panic of the worker into ErrWorkerPanic.
func (s *Supervisor) runOnce(ctx context.Context, worker contract.Worker, name string) (err error) {
	running := observability.WorkersRunning.WithLabelValues(name)
	running.Set(1)
	defer func() {
		running.Set(0)
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", errors.ErrWorkerPanic, name, r)
		}
	}()
	return worker.Run(ctx)
}

// Stop cancels every worker started by Run. Run still waits for them to return.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
