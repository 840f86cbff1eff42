// Package domain contains core concepts of a live video hearing.
// This file defines instant messages exchanged between a participant and the officers.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SendMessageDto is built per message send and never persisted as-is.
type SendMessageDto struct {
	Conference          *Conference `json:"-"`
	MessageUUID         uuid.UUID   `json:"messageUuid"`
	Timestamp           time.Time   `json:"timestamp"`
	From                string      `json:"from"`
	FromDisplayName     string      `json:"fromDisplayName"`
	To                  string      `json:"to"`
	Message             string      `json:"message"`
	ParticipantUsername Username    `json:"participantUsername"`
}

// UserProfile is what the user-profile service tells about a username.
type UserProfile struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	IsAdmin     bool   `json:"isAdmin"`
}

// Name is the display name, falling back to the first name.
func (u UserProfile) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.FirstName
}

// InstantMessage is a stored, already delivered message of a conference conversation.
type InstantMessage struct {
	ID                  uuid.UUID `json:"id"`
	ConferenceID        uuid.UUID `json:"conferenceId"`
	From                string    `json:"from"`
	FromDisplayName     string    `json:"fromDisplayName"`
	To                  string    `json:"to"`
	Message             string    `json:"message"`
	ParticipantUsername Username  `json:"participantUsername"`
	Timestamp           time.Time `json:"timestamp"`
}

func (d SendMessageDto) ToInstantMessage() InstantMessage {
	var conferenceID uuid.UUID
	if d.Conference != nil {
		conferenceID = d.Conference.ID
	}
	return InstantMessage{
		ID:                  d.MessageUUID,
		ConferenceID:        conferenceID,
		From:                d.From,
		FromDisplayName:     d.FromDisplayName,
		To:                  d.To,
		Message:             d.Message,
		ParticipantUsername: d.ParticipantUsername,
		Timestamp:           d.Timestamp,
	}
}

// Allocation ties a hearing to the officer allocated to it.
type Allocation struct {
	ConferenceID        uuid.UUID `json:"conferenceId"`
	HearingID           uuid.UUID `json:"hearingId"`
	CaseName            string    `json:"caseName"`
	ScheduledDateTime   time.Time `json:"scheduledDateTime"`
	AllocatedOfficer    Username  `json:"allocatedOfficer"`
	AllocatedOfficerTag string    `json:"allocatedOfficerTag,omitempty"`
}
