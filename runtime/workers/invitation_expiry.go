package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type InvitationExpirer interface {
	ExpireInvitations(ctx context.Context, ttl time.Duration) (int, error)
}

// InvitationExpiryWorker times out consultation invitations nobody answered.
// The sweep runs on a cron schedule, one sweep at a time.
type InvitationExpiryWorker struct {
	log      *slog.Logger
	expirer  InvitationExpirer
	ttl      time.Duration
	interval time.Duration
}

func NewInvitationExpiryWorker(log *slog.Logger, expirer InvitationExpirer, ttl, interval time.Duration) *InvitationExpiryWorker {
	return &InvitationExpiryWorker{log: log, expirer: expirer, ttl: ttl, interval: interval}
}

func (w *InvitationExpiryWorker) Name() string { return "invitation-expiry" }

func (w *InvitationExpiryWorker) Run(ctx context.Context) error {
	if w.interval < time.Second {
		return fmt.Errorf("invitation sweep interval %s is below one second", w.interval)
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(fmt.Sprintf("@every %s", w.interval), func() { w.sweep(ctx) })
	if err != nil {
		return fmt.Errorf("schedule invitation expiry: %w", err)
	}

	c.Start()
	w.log.Info("Invitation expiry scheduled", "interval", w.interval, "ttl", w.ttl)
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (w *InvitationExpiryWorker) sweep(ctx context.Context) {
	expired, err := w.expirer.ExpireInvitations(ctx, w.ttl)
	if err != nil {
		w.log.Warn("Invitation expiry interrupted", "expired", expired, "error", err)
		return
	}
	if expired > 0 {
		w.log.Info("Consultation invitations timed out", "count", expired)
	}
}
