package handlers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hearing-hub/cache"
	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/errors"
	"hearing-hub/mocks"
	"hearing-hub/runtime"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingSink struct {
	mu       sync.Mutex
	received []event.Notification
}

func (s *countingSink) Consume(ctx context.Context, n event.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, n)
	return nil
}

func (s *countingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func someParticipants(n int) []*domain.Participant {
	participants := make([]*domain.Participant, n)
	for i := range participants {
		participants[i] = &domain.Participant{
			ID:       uuid.New(),
			Username: domain.NewUsername(uuid.NewString() + "@hearings.net"),
			Role:     domain.RoleIndividual,
		}
	}
	return participants
}

func TestParticipantsUpdated_Delivers_To_Each_Participant_Plus_Officers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	hub := runtime.NewEventHub(log, registry, time.Second)
	dispatcher := NewDefaultDispatcher(log, hub, cache.NewConferenceCache(log))
	participants := someParticipants(4)

	// Given one connection per participant and one officer
	sinks := make(map[string]*countingSink)
	for _, p := range participants {
		sinks[p.ID.String()] = &countingSink{}
		registry.Register(p.ID.String(), sinks[p.ID.String()])
		registry.Join(p.ID.String(), p.GroupKey())
	}
	officer := &countingSink{}
	registry.Register("officer", officer)
	registry.Join("officer", domain.VhOfficersGroup)

	// When the participant list changes
	err := dispatcher.Handle(context.Background(), event.ParticipantsUpdated{
		ConferenceID: uuid.New(),
		Participants: participants,
	})

	// Then n+1 deliveries happened
	req.NoError(err)
	total := officer.count()
	for _, sink := range sinks {
		req.Equal(1, sink.count())
		total += sink.count()
	}
	req.Equal(len(participants)+1, total)
}

func TestParticipantsUpdated_Groups_And_Cache(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := mocks.NewMockIEventHub(ctrl)
	conferences := cache.NewConferenceCache(log)
	handler := NewParticipantsUpdatedHandler(log, hub, conferences)
	kept := &domain.Participant{ID: uuid.New(), Username: "kept@hearings.net", HandRaised: true}
	conference := &domain.Conference{ID: uuid.New(), Participants: []*domain.Participant{kept}}
	conferences.Update(conference)
	updated := []*domain.Participant{
		{ID: kept.ID, Username: "kept@hearings.net", DisplayName: "Kept"},
		{ID: uuid.New(), Username: "new@hearings.net"},
	}

	// Run twice: the same event gives the same notifications
	hub.EXPECT().NotifyGroups(gomock.Any(),
		[]domain.GroupKey{"kept@hearings.net", "new@hearings.net", domain.VhOfficersGroup},
		event.ParticipantsUpdatedMessage{ConferenceID: conference.ID, Participants: updated}).
		Return(nil).Times(2)

	for range 2 {
		req.NoError(handler.Handle(context.Background(), event.ParticipantsUpdated{
			ConferenceID: conference.ID,
			Participants: updated,
		}))
	}

	cached, ok := conferences.Get(conference.ID)
	req.True(ok)
	req.Len(cached.Participants, 2)
	p, _ := cached.ParticipantByID(kept.ID)
	req.Equal("Kept", p.DisplayName)
	req.True(p.HandRaised)
}

func TestParticipantsUpdated_Uncached_Conference_Is_Not_Loaded(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := mocks.NewMockIEventHub(ctrl)
	conferences := mocks.NewMockIConferenceCache(ctrl)
	handler := NewParticipantsUpdatedHandler(log, hub, conferences)
	conferenceID := uuid.New()

	conferences.EXPECT().Get(conferenceID).Return(nil, false).Times(1)
	conferences.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	hub.EXPECT().NotifyGroups(gomock.Any(), []domain.GroupKey{domain.VhOfficersGroup}, gomock.Any()).Return(nil).Times(1)

	err := handler.Handle(context.Background(), event.ParticipantsUpdated{
		ConferenceID: conferenceID,
		Participants: []*domain.Participant{},
	})
	req.NoError(err)
}

func TestNewConferenceAdded_Goes_To_Officers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := mocks.NewMockIEventHub(ctrl)
	dispatcher := NewDefaultDispatcher(log, hub, mocks.NewMockIConferenceCache(ctrl))
	conferenceID := uuid.New()

	hub.EXPECT().NotifyGroup(gomock.Any(), domain.VhOfficersGroup,
		event.NewConferenceAddedMessage{ConferenceID: conferenceID}).Return(nil).Times(1)

	req.NoError(dispatcher.Handle(context.Background(), event.NewConferenceAdded{ConferenceID: conferenceID}))
}

func TestAllocationUpdated_Goes_To_The_Allocated_Officer(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := mocks.NewMockIEventHub(ctrl)
	dispatcher := NewDefaultDispatcher(log, hub, mocks.NewMockIConferenceCache(ctrl))
	allocations := []domain.Allocation{{ConferenceID: uuid.New(), CaseName: "Smith vs Jones"}}

	hub.EXPECT().NotifyGroup(gomock.Any(), domain.GroupKey("vho@hearings.net"),
		event.AllocationsUpdated{Allocations: allocations}).Return(nil).Times(1)

	req.NoError(dispatcher.Handle(context.Background(), event.AllocationUpdated{
		AllocatedOfficer: "VHO@Hearings.net",
		Allocations:      allocations,
	}))
}

func TestDispatcher_Rejects_Invalid_Events(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := mocks.NewMockIEventHub(ctrl)
	dispatcher := NewDefaultDispatcher(log, hub, mocks.NewMockIConferenceCache(ctrl))

	hub.EXPECT().NotifyGroup(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Missing conference id
	err := dispatcher.Handle(context.Background(), event.NewConferenceAdded{})
	req.ErrorIs(err, errors.ErrInvalidRequest)

	// No handler registered
	err = NewDispatcher(log).Handle(context.Background(), event.NewConferenceAdded{ConferenceID: uuid.New()})
	req.ErrorIs(err, errors.ErrInvalidRequest)
}

func TestDecode(t *testing.T) {
	req := require.New(t)
	conferenceID := uuid.New()

	evt, err := Decode(event.ParticipantsUpdatedType,
		[]byte(`{"conferenceId":"`+conferenceID.String()+`","participants":[{"id":"`+uuid.NewString()+`","username":"Judge@Hearings.NET"}]}`))
	req.NoError(err)
	updated, ok := evt.(event.ParticipantsUpdated)
	req.True(ok)
	req.Equal(conferenceID, updated.ConferenceID)
	req.Equal(domain.Username("judge@hearings.net"), updated.Participants[0].Username)

	_, err = Decode("Unknown", []byte(`{}`))
	req.ErrorIs(err, errors.ErrInvalidRequest)

	_, err = Decode(event.NewConferenceAddedType, []byte(`{`))
	req.ErrorIs(err, errors.ErrInvalidRequest)
}

var _ contract.EventSink = (*countingSink)(nil)
