package event

import (
	"hearing-hub/domain"

	"github.com/google/uuid"
)

// InternalEvent is raised inside the process by background API callbacks
// and turned into hub broadcasts by the internal event handlers.
type InternalEvent interface {
	EventName() string
}

const (
	NewConferenceAddedType  = "NewConferenceAdded"
	ParticipantsUpdatedType = "ParticipantsUpdated"
	AllocationUpdatedType   = "AllocationUpdated"
)

type NewConferenceAdded struct {
	ConferenceID uuid.UUID `json:"conferenceId" validate:"required"`
}

func (NewConferenceAdded) EventName() string { return NewConferenceAddedType }

type ParticipantsUpdated struct {
	ConferenceID uuid.UUID             `json:"conferenceId" validate:"required"`
	Participants []*domain.Participant `json:"participants" validate:"required"`
}

func (ParticipantsUpdated) EventName() string { return ParticipantsUpdatedType }

type AllocationUpdated struct {
	AllocatedOfficer domain.Username     `json:"allocatedOfficer" validate:"required"`
	Allocations      []domain.Allocation `json:"allocations"`
}

func (AllocationUpdated) EventName() string { return AllocationUpdatedType }
