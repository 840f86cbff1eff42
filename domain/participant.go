// Package domain contains core concepts of a live video hearing.
// This file defines Participant entities and their roles.
// No runtime, network, or transport logic should be added here.
package domain

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleJudge                Role = "Judge"
	RoleIndividual           Role = "Individual"
	RoleRepresentative       Role = "Representative"
	RoleJudicialOfficeHolder Role = "JudicialOfficeHolder"
	RoleStaffMember          Role = "StaffMember"
	RoleVideoHearingsOfficer Role = "VideoHearingsOfficer"
	RoleQuickLinkParticipant Role = "QuickLinkParticipant"
	RoleQuickLinkObserver    Role = "QuickLinkObserver"
)

// IsHost reports whether the role controls the hearing.
func (r Role) IsHost() bool {
	return r == RoleJudge || r == RoleStaffMember
}

type ParticipantStatus string

const (
	ParticipantNotSignedIn    ParticipantStatus = "NotSignedIn"
	ParticipantAvailable      ParticipantStatus = "Available"
	ParticipantInHearing      ParticipantStatus = "InHearing"
	ParticipantInConsultation ParticipantStatus = "InConsultation"
	ParticipantDisconnected   ParticipantStatus = "Disconnected"
)

type LinkType string

const LinkTypeInterpreter LinkType = "Interpreter"

type LinkedParticipant struct {
	LinkedID uuid.UUID `json:"linkedId"`
	LinkType LinkType  `json:"linkType"`
}

// Participant belongs to exactly one Conference.
type Participant struct {
	ID                 uuid.UUID           `json:"id"`
	Username           Username            `json:"username"`
	DisplayName        string              `json:"displayName"`
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Role               Role                `json:"role"`
	HearingRole        string              `json:"hearingRole"`
	LinkedParticipants []LinkedParticipant `json:"linkedParticipants"`
	CurrentRoom        string              `json:"currentRoom,omitempty"`
	HandRaised         bool                `json:"handRaised"`
	Status             ParticipantStatus   `json:"status"`
}

func (p *Participant) IsHost() bool { return p.Role.IsHost() }

func (p *Participant) IsJudicialOfficeHolder() bool {
	return p.Role == RoleJudicialOfficeHolder
}

func (p *Participant) IsStaffMember() bool { return p.Role == RoleStaffMember }

func (p *Participant) GroupKey() GroupKey { return p.Username.GroupKey() }

func (p *Participant) IsLinkedTo(id uuid.UUID) bool {
	for _, l := range p.LinkedParticipants {
		if l.LinkedID == id {
			return true
		}
	}
	return false
}

func (p *Participant) clone() *Participant {
	c := *p
	c.LinkedParticipants = append([]LinkedParticipant(nil), p.LinkedParticipants...)
	return &c
}
