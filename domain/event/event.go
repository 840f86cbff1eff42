package event

import (
	"time"

	"hearing-hub/domain"

	"github.com/google/uuid"
)

// Notification is pushed to hub groups.
// Type is the name clients subscribe to.
type Notification interface {
	Type() string
}

type ParticipantHandRaiseMessage struct {
	ParticipantID uuid.UUID `json:"participantId"`
	ConferenceID  uuid.UUID `json:"conferenceId"`
	IsRaised      bool      `json:"isRaised"`
}

func (ParticipantHandRaiseMessage) Type() string { return "ParticipantHandRaiseMessage" }

type NonHostTransfer struct {
	ConferenceID  uuid.UUID                `json:"conferenceId"`
	ParticipantID uuid.UUID                `json:"participantId"`
	Direction     domain.TransferDirection `json:"direction"`
}

func (NonHostTransfer) Type() string { return "NonHostTransfer" }

type ParticipantsUpdatedMessage struct {
	ConferenceID uuid.UUID             `json:"conferenceId"`
	Participants []*domain.Participant `json:"participants"`
}

func (ParticipantsUpdatedMessage) Type() string { return "ParticipantsUpdatedMessage" }

type NewConferenceAddedMessage struct {
	ConferenceID uuid.UUID `json:"conferenceId"`
}

func (NewConferenceAddedMessage) Type() string { return "NewConferenceAddedMessage" }

type AllocationsUpdated struct {
	Allocations []domain.Allocation `json:"allocations"`
}

func (AllocationsUpdated) Type() string { return "AllocationsUpdated" }

type RequestedConsultationMessage struct {
	ConferenceID uuid.UUID `json:"conferenceId"`
	RoomLabel    string    `json:"roomLabel"`
	RequestedBy  uuid.UUID `json:"requestedBy"`
	RequestedFor uuid.UUID `json:"requestedFor"`
	InvitationID uuid.UUID `json:"invitationId"`
}

func (RequestedConsultationMessage) Type() string { return "RequestedConsultationMessage" }

type ConsultationRequestResponseMessage struct {
	ConferenceID uuid.UUID                 `json:"conferenceId"`
	InvitationID uuid.UUID                 `json:"invitationId"`
	RoomLabel    string                    `json:"roomLabel"`
	RequestedFor uuid.UUID                 `json:"requestedFor"`
	Answer       domain.ConsultationAnswer `json:"answer"`
}

func (ConsultationRequestResponseMessage) Type() string { return "ConsultationRequestResponseMessage" }

type RoomUpdate struct {
	ConferenceID   uuid.UUID   `json:"conferenceId"`
	Label          string      `json:"label"`
	Locked         bool        `json:"locked"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
}

func (RoomUpdate) Type() string { return "RoomUpdate" }

type ParticipantTransferring struct {
	ConferenceID  uuid.UUID `json:"conferenceId"`
	ParticipantID uuid.UUID `json:"participantId"`
	RoomLabel     string    `json:"roomLabel"`
}

func (ParticipantTransferring) Type() string { return "ParticipantTransferring" }

type ReceiveMessage struct {
	ConferenceID    uuid.UUID `json:"conferenceId"`
	MessageUUID     uuid.UUID `json:"messageUuid"`
	From            string    `json:"from"`
	FromDisplayName string    `json:"fromDisplayName"`
	To              string    `json:"to"`
	Message         string    `json:"message"`
	Timestamp       time.Time `json:"timestamp"`
}

func (ReceiveMessage) Type() string { return "ReceiveMessage" }
