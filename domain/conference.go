// Package domain contains core concepts of a live video hearing.
// The Conference aggregate is treated as an immutable snapshot: callers mutate a Clone
// and hand it back to the conference cache.
package domain

import (
	"fmt"
	"slices"
	"time"

	"hearing-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ConferenceStatus string

const (
	ConferenceNotStarted ConferenceStatus = "NotStarted"
	ConferenceInSession  ConferenceStatus = "InSession"
	ConferencePaused     ConferenceStatus = "Paused"
	ConferenceSuspended  ConferenceStatus = "Suspended"
	ConferenceClosed     ConferenceStatus = "Closed"
)

// Conference is the aggregate root of a live hearing.
type Conference struct {
	ID                uuid.UUID        `json:"id"`
	Status            ConferenceStatus `json:"status"`
	CaseName          string           `json:"caseName"`
	CaseNumber        string           `json:"caseNumber"`
	HearingVenueName  string           `json:"hearingVenueName"`
	ScheduledDateTime time.Time        `json:"scheduledDateTime"`
	Participants      []*Participant   `json:"participants"`
	Endpoints         []Endpoint       `json:"endpoints"`
	CivilianRooms     []CivilianRoom   `json:"civilianRooms"`
	Rooms             []Room           `json:"rooms"`
}

// Clone returns a deep copy safe to mutate before it is stored back in the cache.
func (c *Conference) Clone() *Conference {
	out := *c
	out.Participants = lo.Map(c.Participants, func(p *Participant, _ int) *Participant {
		return p.clone()
	})
	out.Endpoints = slices.Clone(c.Endpoints)
	out.CivilianRooms = lo.Map(c.CivilianRooms, func(r CivilianRoom, _ int) CivilianRoom {
		r.Participants = slices.Clone(r.Participants)
		return r
	})
	out.Rooms = lo.Map(c.Rooms, func(r Room, _ int) Room { return r.clone() })
	return &out
}

func (c *Conference) ParticipantByID(id uuid.UUID) (*Participant, bool) {
	return lo.Find(c.Participants, func(p *Participant) bool { return p.ID == id })
}

// ParticipantByUsername matches case-insensitively.
func (c *Conference) ParticipantByUsername(raw string) (*Participant, bool) {
	username := NewUsername(raw)
	return lo.Find(c.Participants, func(p *Participant) bool { return p.Username == username })
}

func (c *Conference) HasParticipant(raw string) bool {
	_, ok := c.ParticipantByUsername(raw)
	return ok
}

func (c *Conference) Hosts() []*Participant {
	return lo.Filter(c.Participants, func(p *Participant, _ int) bool { return p.IsHost() })
}

func (c *Conference) RoomByLabel(label string) (Room, bool) {
	return lo.Find(c.Rooms, func(r Room) bool { return r.Label == label })
}

func (c *Conference) participantNotFound(id uuid.UUID) error {
	return fmt.Errorf("%w: conference %s participant %s", errors.ErrParticipantNotFound, c.ID, id)
}

func (c *Conference) SetHandRaised(participantID uuid.UUID, raised bool) error {
	p, ok := c.ParticipantByID(participantID)
	if !ok {
		return c.participantNotFound(participantID)
	}
	p.HandRaised = raised
	return nil
}

func (c *Conference) AddParticipant(p *Participant) {
	if _, ok := c.ParticipantByID(p.ID); ok {
		return
	}
	c.Participants = append(c.Participants, p)
}

func (c *Conference) RemoveParticipant(participantID uuid.UUID) error {
	if _, ok := c.ParticipantByID(participantID); !ok {
		return c.participantNotFound(participantID)
	}
	c.removeFromRooms(participantID)
	c.Participants = lo.Reject(c.Participants, func(p *Participant, _ int) bool {
		return p.ID == participantID
	})
	return nil
}

// ReplaceParticipants swaps the participant list while keeping room assignments
// and raised hands of the participants that survive the update.
func (c *Conference) ReplaceParticipants(participants []*Participant) {
	previous := lo.SliceToMap(c.Participants, func(p *Participant) (uuid.UUID, *Participant) {
		return p.ID, p
	})
	c.Participants = lo.Map(participants, func(p *Participant, _ int) *Participant {
		next := p.clone()
		if old, ok := previous[p.ID]; ok {
			next.CurrentRoom = old.CurrentRoom
			next.HandRaised = old.HandRaised
		}
		return next
	})
	for i := range c.Rooms {
		c.Rooms[i].ParticipantIDs = lo.Filter(c.Rooms[i].ParticipantIDs, func(id uuid.UUID, _ int) bool {
			_, ok := c.ParticipantByID(id)
			return ok
		})
	}
}

// UpdateParticipantRoom moves a participant into the room with the given label,
// creating the room when it does not exist yet.
func (c *Conference) UpdateParticipantRoom(participantID uuid.UUID, label string) (Room, error) {
	p, ok := c.ParticipantByID(participantID)
	if !ok {
		return Room{}, c.participantNotFound(participantID)
	}
	c.removeFromRooms(participantID)
	idx := slices.IndexFunc(c.Rooms, func(r Room) bool { return r.Label == label })
	if idx < 0 {
		c.Rooms = append(c.Rooms, NewRoom(label))
		idx = len(c.Rooms) - 1
	}
	c.Rooms[idx].ParticipantIDs = append(c.Rooms[idx].ParticipantIDs, participantID)
	p.CurrentRoom = label
	return c.Rooms[idx].clone(), nil
}

// RemoveParticipantFromRoom clears the participant's room and returns the room it left.
func (c *Conference) RemoveParticipantFromRoom(participantID uuid.UUID) (Room, error) {
	p, ok := c.ParticipantByID(participantID)
	if !ok {
		return Room{}, c.participantNotFound(participantID)
	}
	label := p.CurrentRoom
	c.removeFromRooms(participantID)
	room, ok := c.RoomByLabel(label)
	if !ok {
		return Room{}, fmt.Errorf("%w: %q", errors.ErrRoomNotFound, label)
	}
	return room.clone(), nil
}

func (c *Conference) SetRoomLock(label string, locked bool) (Room, error) {
	idx := slices.IndexFunc(c.Rooms, func(r Room) bool { return r.Label == label })
	if idx < 0 {
		return Room{}, fmt.Errorf("%w: %q", errors.ErrRoomNotFound, label)
	}
	c.Rooms[idx].Locked = locked
	return c.Rooms[idx].clone(), nil
}

func (c *Conference) removeFromRooms(participantID uuid.UUID) {
	for i := range c.Rooms {
		c.Rooms[i].ParticipantIDs = slices.DeleteFunc(c.Rooms[i].ParticipantIDs, func(id uuid.UUID) bool {
			return id == participantID
		})
	}
	if p, ok := c.ParticipantByID(participantID); ok {
		p.CurrentRoom = ""
	}
}
