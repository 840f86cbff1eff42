package services

import (
	"context"
	"fmt"
	"log/slog"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ConsultationNotifier drives private consultation invitations and tells the
// interested groups about them. It never expires invitations by itself, see
// ConsultationService.ExpireInvitations.
type ConsultationNotifier struct {
	log     *slog.Logger
	hub     contract.IEventHub
	tracker *InvitationTracker
}

var _ contract.IConsultationNotifier = (*ConsultationNotifier)(nil)

func NewConsultationNotifier(log *slog.Logger, hub contract.IEventHub, tracker *InvitationTracker) *ConsultationNotifier {
	return &ConsultationNotifier{log: log, hub: hub, tracker: tracker}
}

// NotifyConsultationRequest opens an invitation and sends it to the target only.
func (n *ConsultationNotifier) NotifyConsultationRequest(ctx context.Context, conference *domain.Conference,
	roomLabel string, requestedBy, requestedFor uuid.UUID) (uuid.UUID, error) {
	target, ok := conference.ParticipantByID(requestedFor)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: conference %s participant %s", errors.ErrParticipantNotFound, conference.ID, requestedFor)
	}

	invitation := n.tracker.Request(conference.ID, roomLabel, requestedBy, requestedFor)
	n.log.Debug("Consultation requested",
		"conference_id", conference.ID, "invitation_id", invitation.ID, "room", roomLabel)

	msg := event.RequestedConsultationMessage{
		ConferenceID: conference.ID,
		RoomLabel:    roomLabel,
		RequestedBy:  requestedBy,
		RequestedFor: requestedFor,
		InvitationID: invitation.ID,
	}
	if err := n.hub.NotifyGroup(ctx, target.GroupKey(), msg); err != nil {
		n.log.Warn("Consultation request not delivered", "invitation_id", invitation.ID, "error", err)
	}
	return invitation.ID, nil
}

// NotifyConsultationResponse closes a pending invitation with answer.
// The requester always hears about the answer, the target too when it accepted.
func (n *ConsultationNotifier) NotifyConsultationResponse(ctx context.Context, conference *domain.Conference,
	invitationID uuid.UUID, roomLabel string, requestedFor uuid.UUID, answer domain.ConsultationAnswer) error {
	if !answer.Valid() {
		return fmt.Errorf("%w: answer %q", errors.ErrInvalidRequest, answer)
	}
	invitation, err := n.tracker.Answer(invitationID, requestedFor, answer)
	if err != nil {
		return err
	}
	if invitation.RoomLabel != roomLabel {
		n.log.Warn("Consultation answered for another room",
			"invitation_id", invitationID, "invited_room", invitation.RoomLabel, "room", roomLabel)
	}

	var groups []domain.GroupKey
	if requester, ok := conference.ParticipantByID(invitation.RequestedBy); ok {
		groups = append(groups, requester.GroupKey())
	}
	if answer == domain.ConsultationAccepted {
		if target, ok := conference.ParticipantByID(requestedFor); ok {
			groups = append(groups, target.GroupKey())
		}
	}

	msg := event.ConsultationRequestResponseMessage{
		ConferenceID: conference.ID,
		InvitationID: invitationID,
		RoomLabel:    invitation.RoomLabel,
		RequestedFor: requestedFor,
		Answer:       answer,
	}
	if err := n.hub.NotifyGroups(ctx, groups, msg); err != nil {
		n.log.Warn("Consultation response not fully delivered", "invitation_id", invitationID, "error", err)
	}
	return nil
}

// NotifyRoomUpdate sends the room state to its members, the hosts and the officers.
func (n *ConsultationNotifier) NotifyRoomUpdate(ctx context.Context, conference *domain.Conference, room domain.Room) error {
	members := lo.FilterMap(room.ParticipantIDs, func(id uuid.UUID, _ int) (domain.GroupKey, bool) {
		p, ok := conference.ParticipantByID(id)
		if !ok {
			return "", false
		}
		return p.GroupKey(), true
	})
	groups := append(members, hostGroups(conference)...)
	groups = append(groups, domain.VhOfficersGroup)

	msg := event.RoomUpdate{
		ConferenceID:   conference.ID,
		Label:          room.Label,
		Locked:         room.Locked,
		ParticipantIDs: room.ParticipantIDs,
	}
	if err := n.hub.NotifyGroups(ctx, lo.Uniq(groups), msg); err != nil {
		n.log.Warn("Room update not fully delivered", "conference_id", conference.ID, "room", room.Label, "error", err)
	}
	return nil
}

// NotifyParticipantTransferring lets hosts and officers show a pending transfer.
func (n *ConsultationNotifier) NotifyParticipantTransferring(ctx context.Context, conference *domain.Conference,
	participantID uuid.UUID, roomLabel string) error {
	groups := append(hostGroups(conference), domain.VhOfficersGroup)
	msg := event.ParticipantTransferring{
		ConferenceID:  conference.ID,
		ParticipantID: participantID,
		RoomLabel:     roomLabel,
	}
	if err := n.hub.NotifyGroups(ctx, lo.Uniq(groups), msg); err != nil {
		n.log.Warn("Transfer notification not fully delivered", "conference_id", conference.ID, "error", err)
	}
	return nil
}

func hostGroups(conference *domain.Conference) []domain.GroupKey {
	return lo.Map(conference.Hosts(), func(p *domain.Participant, _ int) domain.GroupKey {
		return p.GroupKey()
	})
}
