package domain

import (
	"slices"

	"github.com/google/uuid"
)

// MainRoomLabel is the label of the hearing room itself.
const MainRoomLabel = "HearingRoom"

// Room is the hearing room or a consultation room.
// A participant is a member of at most one room at a time.
type Room struct {
	Label          string      `json:"label"`
	Locked         bool        `json:"locked"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
}

func NewRoom(label string) Room {
	return Room{Label: label}
}

func (r Room) HasMember(id uuid.UUID) bool {
	return slices.Contains(r.ParticipantIDs, id)
}

func (r Room) clone() Room {
	r.ParticipantIDs = append([]uuid.UUID(nil), r.ParticipantIDs...)
	return r
}

// CivilianRoom is an ad-hoc sub-room created for private consultations.
type CivilianRoom struct {
	ID           int64       `json:"id"`
	Label        string      `json:"label"`
	Participants []uuid.UUID `json:"participants"`
}

type Endpoint struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"displayName"`
	SipAddress      string    `json:"sipAddress"`
	Status          string    `json:"status"`
	DefenceAdvocate Username  `json:"defenceAdvocate"`
	CurrentRoom     string    `json:"currentRoom,omitempty"`
}
