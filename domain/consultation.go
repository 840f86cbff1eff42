package domain

import (
	"time"

	"github.com/google/uuid"
)

type ConsultationAnswer string

const (
	ConsultationAccepted ConsultationAnswer = "Accepted"
	ConsultationRejected ConsultationAnswer = "Rejected"
	ConsultationTimedOut ConsultationAnswer = "TimedOut"
)

func (a ConsultationAnswer) Valid() bool {
	switch a {
	case ConsultationAccepted, ConsultationRejected, ConsultationTimedOut:
		return true
	}
	return false
}

type InvitationState string

const (
	InvitationRequested InvitationState = "Requested"
	InvitationAccepted  InvitationState = "Accepted"
	InvitationRejected  InvitationState = "Rejected"
	InvitationTimedOut  InvitationState = "TimedOut"
)

// StateFor is the terminal state an answer moves an invitation into.
func StateFor(answer ConsultationAnswer) InvitationState {
	switch answer {
	case ConsultationAccepted:
		return InvitationAccepted
	case ConsultationRejected:
		return InvitationRejected
	default:
		return InvitationTimedOut
	}
}

// ConsultationInvitation lives only while a private consultation request is pending.
// It is never reused: every request gets a new ID.
type ConsultationInvitation struct {
	ID           uuid.UUID
	ConferenceID uuid.UUID
	RoomLabel    string
	RequestedBy  uuid.UUID
	RequestedFor uuid.UUID
	CreatedAt    time.Time
	State        InvitationState
}

// InvitationKey identifies the requester/target/room triple an invitation is pending for.
type InvitationKey struct {
	ConferenceID uuid.UUID
	RequestedBy  uuid.UUID
	RequestedFor uuid.UUID
	RoomLabel    string
}

func (i ConsultationInvitation) Key() InvitationKey {
	return InvitationKey{
		ConferenceID: i.ConferenceID,
		RequestedBy:  i.RequestedBy,
		RequestedFor: i.RequestedFor,
		RoomLabel:    i.RoomLabel,
	}
}

func (i ConsultationInvitation) Pending() bool { return i.State == InvitationRequested }

type TransferType string

const (
	TransferCall    TransferType = "Call"
	TransferDismiss TransferType = "Dismiss"
)

type TransferDirection string

const (
	TransferIn  TransferDirection = "In"
	TransferOut TransferDirection = "Out"
)
