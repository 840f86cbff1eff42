package domain

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// AdminChannel is the literal "to" value a participant uses to message the officers.
const AdminChannel = "Admin"

// VhOfficersGroup is the hub group every connected video hearings officer joins.
const VhOfficersGroup GroupKey = "VhOfficers"

// Username is the canonical, case-folded identity of a user.
// Two usernames are equal when their lower-cased forms are equal.
type Username string

func NewUsername(raw string) Username {
	return Username(strings.ToLower(strings.TrimSpace(raw)))
}

func (u Username) String() string { return string(u) }

// UnmarshalJSON normalises usernames coming from the wire.
func (u *Username) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = NewUsername(raw)
	return nil
}

// Matches compares against a raw, not yet normalised username.
func (u Username) Matches(raw string) bool {
	return u == NewUsername(raw)
}

// GroupKey is the per-user group of the username.
func (u Username) GroupKey() GroupKey { return GroupKey(u) }

// GroupKey names a set of hub connections that receive a broadcast together.
type GroupKey string

func (g GroupKey) String() string { return string(g) }

// ConferenceGroup is the group every connection watching a conference joins.
func ConferenceGroup(conferenceID uuid.UUID) GroupKey {
	return GroupKey(conferenceID.String())
}

type RecipientKind int

const (
	RecipientAdmin RecipientKind = iota + 1
	RecipientParticipant
)

// Recipient is the resolved "to" of an instant message: the admin channel or one participant.
type Recipient struct {
	Kind          RecipientKind
	ParticipantID uuid.UUID
}

func (r Recipient) IsAdmin() bool { return r.Kind == RecipientAdmin }

// String renders the recipient the way clients send it.
func (r Recipient) String() string {
	if r.IsAdmin() {
		return AdminChannel
	}
	return r.ParticipantID.String()
}

// ParseRecipient resolves the raw "to" field once, at the boundary.
// It returns false when "to" is neither the admin channel nor a participant id.
func ParseRecipient(to string) (Recipient, bool) {
	to = strings.TrimSpace(to)
	if strings.EqualFold(to, AdminChannel) {
		return Recipient{Kind: RecipientAdmin}, true
	}
	id, err := uuid.Parse(to)
	if err != nil || id == uuid.Nil {
		return Recipient{}, false
	}
	return Recipient{Kind: RecipientParticipant, ParticipantID: id}, true
}
