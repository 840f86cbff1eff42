//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"hearing-hub/domain"
	"hearing-hub/domain/event"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// NamedWorker overrides the reflected name, two listeners can share a type name.
type NamedWorker interface {
	Worker
	Name() string
}

// GetWorkerName labels a worker in logs and metrics: its Name when it has one,
// otherwise its type name.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(NamedWorker); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Loader fetches a conference from the conference-data service.
type Loader func(ctx context.Context) (*domain.Conference, error)

// IConferenceCache is the only owner of Conference aggregates.
type IConferenceCache interface {
	GetOrAdd(ctx context.Context, conferenceID uuid.UUID, loader Loader) (*domain.Conference, error)
	Get(conferenceID uuid.UUID) (*domain.Conference, bool)
	Update(conference *domain.Conference)
	Mutate(ctx context.Context, conferenceID uuid.UUID, loader Loader, fn func(*domain.Conference) error) (*domain.Conference, error)
	Remove(conferenceID uuid.UUID)
}

type IConferenceDataClient interface {
	GetConferenceDetails(ctx context.Context, conferenceID uuid.UUID) (*domain.Conference, error)
}

type IUserProfileClient interface {
	GetUser(ctx context.Context, username string) (domain.UserProfile, error)
}

type IVideoSessionClient interface {
	TransferParticipant(ctx context.Context, conferenceID, participantID uuid.UUID, transferType domain.TransferType) error
}

// IConferenceService resolves conferences through the cache, loading them on a miss.
type IConferenceService interface {
	GetConference(ctx context.Context, conferenceID uuid.UUID) (*domain.Conference, error)
	UpdateConference(ctx context.Context, conferenceID uuid.UUID, fn func(*domain.Conference) error) (*domain.Conference, error)
	ForgetConference(conferenceID uuid.UUID)
}

// EventSink is one live connection. Consume must keep submission order.
type EventSink interface {
	Consume(ctx context.Context, n event.Notification) error
}

type IGroupRegistry interface {
	Register(connectionID string, sink EventSink)
	Unregister(connectionID string)
	Join(connectionID string, group domain.GroupKey)
	Leave(connectionID string, group domain.GroupKey)
	GetSinksForGroup(group domain.GroupKey) []EventSink
}

type IEventHub interface {
	NotifyGroup(ctx context.Context, group domain.GroupKey, n event.Notification) error
	NotifyGroups(ctx context.Context, groups []domain.GroupKey, n event.Notification) error
}

type IConsultationNotifier interface {
	NotifyConsultationRequest(ctx context.Context, conference *domain.Conference, roomLabel string, requestedBy, requestedFor uuid.UUID) (uuid.UUID, error)
	NotifyConsultationResponse(ctx context.Context, conference *domain.Conference, invitationID uuid.UUID, roomLabel string, requestedFor uuid.UUID, answer domain.ConsultationAnswer) error
	NotifyRoomUpdate(ctx context.Context, conference *domain.Conference, room domain.Room) error
	NotifyParticipantTransferring(ctx context.Context, conference *domain.Conference, participantID uuid.UUID, roomLabel string) error
}

type IMessageRepository interface {
	StoreMessage(message domain.InstantMessage) error
	GetMessages(conferenceID uuid.UUID, participant domain.Username) ([]domain.InstantMessage, error)
	DeleteConference(conferenceID uuid.UUID) error
}

// IModerator masks forbidden words and reports the ones it found.
type IModerator interface {
	Censor(original string) (string, []string)
}
