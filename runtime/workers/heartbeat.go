package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hearing-hub/observability"

	"github.com/shirou/gopsutil/process"
)

// HealthReporter is told whether the process is fit to serve.
type HealthReporter interface {
	SetServing(serving bool)
}

// HeartbeatWorker samples the hub process (CPU, RSS, OS status) on every tick,
// publishes it as gauges and reports the process healthy while sampling works.
type HeartbeatWorker struct {
	log      *slog.Logger
	reporter HealthReporter
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, reporter HealthReporter, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, reporter: reporter, interval: interval}
}

func (w *HeartbeatWorker) Name() string { return "heartbeat" }

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("heartbeat interval must be positive, got %s", w.interval)
	}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	defer w.reporter.SetServing(false)

	w.beat(p)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	rss, cpu, status, err := getSelfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
		w.reporter.SetServing(false)
		return
	}
	observability.ProcessRSSBytes.Set(float64(rss))
	observability.ProcessCPUPercent.Set(cpu)
	w.log.Debug("Heartbeat", "rss", rss, "cpu", cpu, "status", status)
	w.reporter.SetServing(true)
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
