package domain

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// LinkedParticipantsOf classifies who is linked to a participant for notification purposes.
//
// A judicial office holder is linked to every other judicial office holder of the
// conference, whatever its explicit links say. Anybody else is linked to the
// participants listed in its LinkedParticipants that exist in the conference.
// The participant itself is never part of the result.
func LinkedParticipantsOf(participant *Participant, conference *Conference) []*Participant {
	if participant.IsJudicialOfficeHolder() {
		return lo.Filter(conference.Participants, func(p *Participant, _ int) bool {
			return p.ID != participant.ID && p.IsJudicialOfficeHolder()
		})
	}
	return lo.Filter(conference.Participants, func(p *Participant, _ int) bool {
		return p.ID != participant.ID && participant.IsLinkedTo(p.ID)
	})
}

// LinkedParticipantIDsOf is LinkedParticipantsOf reduced to ids.
func LinkedParticipantIDsOf(participant *Participant, conference *Conference) []uuid.UUID {
	return lo.Map(LinkedParticipantsOf(participant, conference), func(p *Participant, _ int) uuid.UUID {
		return p.ID
	})
}
