package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type countingExpirer struct {
	calls atomic.Int32
	ttl   atomic.Int64
}

func (e *countingExpirer) ExpireInvitations(ctx context.Context, ttl time.Duration) (int, error) {
	e.calls.Add(1)
	e.ttl.Store(int64(ttl))
	return 1, nil
}

func TestInvitationExpiryWorker_Sweeps_Until_Cancelled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	expirer := &countingExpirer{}
	worker := NewInvitationExpiryWorker(log, expirer, 2*time.Minute, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
	defer cancel()

	// Run returns nil once the context is done
	req.NoError(worker.Run(ctx))

	req.GreaterOrEqual(expirer.calls.Load(), int32(1))
	req.Equal(int64(2*time.Minute), expirer.ttl.Load())
}

func TestInvitationExpiryWorker_Invalid_Interval(t *testing.T) {
	req := require.New(t)
	worker := NewInvitationExpiryWorker(logs.GetLoggerFromLevel(slog.LevelDebug), &countingExpirer{}, time.Minute, 0)

	err := worker.Run(context.Background())

	req.Error(err)
}
