// Package runtime routes outbound notifications to the hub groups.
// It orchestrates delivery without containing business logic or domain rules.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/observability"

	"github.com/samber/lo"
)

// EventHub broadcasts notifications to every connection of one or more groups.
//
// It provides best-effort fan-out: a connection that fails or times out is logged
// and counted, and never stops delivery to the other connections. Ordering is
// only guaranteed per connection, by the sink itself.
//
// EventHub is safe for concurrent use by multiple goroutines.
type EventHub struct {
	log         *slog.Logger
	registry    contract.IGroupRegistry
	sinkTimeout time.Duration
}

var _ contract.IEventHub = (*EventHub)(nil)

func NewEventHub(log *slog.Logger, registry contract.IGroupRegistry, sinkTimeout time.Duration) *EventHub {
	return &EventHub{log: log, registry: registry, sinkTimeout: sinkTimeout}
}

// NotifyGroup delivers n to every connection of the group.
// A group without connections is a no-op.
func (h *EventHub) NotifyGroup(ctx context.Context, group domain.GroupKey, n event.Notification) error {
	sinks := h.registry.GetSinksForGroup(group)
	if len(sinks) == 0 {
		h.log.Debug("No connection in group", "group", group, "type", n.Type())
		return nil
	}

	errs := make([]error, len(sinks))
	var wg sync.WaitGroup
	for i, sink := range sinks {
		wg.Add(1)
		go func(i int, sink contract.EventSink) {
			defer wg.Done()
			errs[i] = h.consume(ctx, sink, n)
		}(i, sink)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("group %s: %w", group, err)
	}
	return nil
}

// NotifyGroups sends n once to each distinct group.
// Groups are independent: every group is attempted and failures are joined.
func (h *EventHub) NotifyGroups(ctx context.Context, groups []domain.GroupKey, n event.Notification) error {
	groups = lo.Uniq(groups)
	errs := make([]error, len(groups))
	var wg sync.WaitGroup
	for i, group := range groups {
		wg.Add(1)
		go func(i int, group domain.GroupKey) {
			defer wg.Done()
			errs[i] = h.NotifyGroup(ctx, group, n)
		}(i, group)
	}
	wg.Wait()

	err := errors.Join(errs...)
	if err != nil {
		h.log.Warn("Broadcast partially failed", "type", n.Type(), "groups", len(groups), "error", err)
	}
	return err
}

func (h *EventHub) consume(ctx context.Context, sink contract.EventSink, n event.Notification) error {
	sinkCtx, cancel := context.WithTimeout(ctx, h.sinkTimeout)
	defer cancel()

	if err := sink.Consume(sinkCtx, n); err != nil {
		observability.NotificationFailures.WithLabelValues(n.Type()).Inc()
		return err
	}
	observability.NotificationsSent.WithLabelValues(n.Type()).Inc()
	return nil
}
