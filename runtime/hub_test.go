package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	mu       sync.Mutex
	received []event.Notification
}

func (s *recordingSink) Consume(ctx context.Context, n event.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, n)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func TestEventHub_NotifyGroup_Reaches_Every_Connection(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry()
	hub := NewEventHub(log, registry, time.Second)
	group := domain.NewUsername("judge@hearings.net").GroupKey()

	// Given a judge connected from two tabs and an unrelated connection
	tab1, tab2, other := &recordingSink{}, &recordingSink{}, &recordingSink{}
	for id, sink := range map[string]contract.EventSink{"tab1": tab1, "tab2": tab2, "other": other} {
		registry.Register(id, sink)
	}
	registry.Join("tab1", group)
	registry.Join("tab2", group)
	registry.Join("other", domain.VhOfficersGroup)

	// When the judge group is notified
	err := hub.NotifyGroup(context.Background(), group, event.NewConferenceAddedMessage{ConferenceID: uuid.New()})

	// Then both tabs receive it and nobody else
	req.NoError(err)
	req.Equal(1, tab1.count())
	req.Equal(1, tab2.count())
	req.Equal(0, other.count())
}

func TestEventHub_NotifyGroup_Empty_Group_Is_A_Noop(t *testing.T) {
	req := require.New(t)
	hub := NewEventHub(logs.GetLoggerFromLevel(slog.LevelDebug), NewRegistry(), time.Second)

	err := hub.NotifyGroup(context.Background(), domain.GroupKey("nobody@hearings.net"),
		event.NewConferenceAddedMessage{ConferenceID: uuid.New()})

	req.NoError(err)
}

func TestEventHub_NotifyGroups_Does_Not_Short_Circuit(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := NewRegistry()
	hub := NewEventHub(log, registry, time.Second)

	// Given a broken connection in the first group and a healthy one in the second
	broken := mocks.NewMockEventSink(ctrl)
	broken.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("connection closed")).Times(1)
	healthy := &recordingSink{}
	registry.Register("broken", broken)
	registry.Register("healthy", healthy)
	registry.Join("broken", "first")
	registry.Join("healthy", "second")

	// When both groups are notified, the first one listed twice
	err := hub.NotifyGroups(context.Background(), []domain.GroupKey{"first", "second", "first"},
		event.ParticipantHandRaiseMessage{ParticipantID: uuid.New(), ConferenceID: uuid.New(), IsRaised: true})

	// Then the failure is reported and the healthy group still got exactly one message
	req.Error(err)
	req.ErrorContains(err, "connection closed")
	req.Equal(1, healthy.count())
}

func TestEventHub_Sink_Timeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := NewRegistry()
	sinkTimeout := 20 * time.Millisecond
	hub := NewEventHub(log, registry, sinkTimeout)

	// Given a connection that never drains
	stuck := mocks.NewMockEventSink(ctrl)
	stuck.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n event.Notification) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).Times(1)
	registry.Register("stuck", stuck)
	registry.Join("stuck", domain.VhOfficersGroup)

	// When it is notified
	start := time.Now()
	err := hub.NotifyGroup(context.Background(), domain.VhOfficersGroup, event.NewConferenceAddedMessage{})

	// Then the hub gives up after the sink timeout
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Less(time.Since(start), time.Second)
}
