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

type ConferenceManagementService struct {
	log         *slog.Logger
	conferences contract.IConferenceService
	video       contract.IVideoSessionClient
	hub         contract.IEventHub
}

func NewConferenceManagementService(log *slog.Logger, conferences contract.IConferenceService,
	video contract.IVideoSessionClient, hub contract.IEventHub) *ConferenceManagementService {
	return &ConferenceManagementService{log: log, conferences: conferences, video: video, hub: hub}
}

// UpdateParticipantHandStatus records the hand state and tells the participant,
// the hosts and the linked participants. Every group is notified once.
func (s *ConferenceManagementService) UpdateParticipantHandStatus(ctx context.Context, conferenceID, participantID uuid.UUID, isRaised bool) error {
	conference, err := s.conferences.UpdateConference(ctx, conferenceID, func(c *domain.Conference) error {
		return c.SetHandRaised(participantID, isRaised)
	})
	if err != nil {
		return err
	}
	participant, ok := conference.ParticipantByID(participantID)
	if !ok {
		return fmt.Errorf("%w: conference %s participant %s", errors.ErrParticipantNotFound, conferenceID, participantID)
	}

	groups := HandRaiseGroups(participant, conference)
	msg := event.ParticipantHandRaiseMessage{
		ParticipantID: participantID,
		ConferenceID:  conferenceID,
		IsRaised:      isRaised,
	}
	s.log.Debug("Hand status changed",
		"conference_id", conferenceID, "participant_id", participantID, "raised", isRaised, "groups", len(groups))
	if err := s.hub.NotifyGroups(ctx, groups, msg); err != nil {
		s.log.Warn("Hand status not fully delivered", "conference_id", conferenceID, "error", err)
	}
	return nil
}

// ParticipantLeaveConference dismisses the participant from the video session,
// then tells every non staff participant and the conference group.
// Nothing is broadcast when the dismiss fails.
func (s *ConferenceManagementService) ParticipantLeaveConference(ctx context.Context, conferenceID uuid.UUID, username string) error {
	conference, err := s.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return err
	}
	participant, ok := conference.ParticipantByUsername(username)
	if !ok {
		return fmt.Errorf("%w: conference %s username %s", errors.ErrParticipantNotFound, conferenceID, domain.NewUsername(username))
	}

	if err := s.video.TransferParticipant(ctx, conferenceID, participant.ID, domain.TransferDismiss); err != nil {
		return fmt.Errorf("%w: dismiss participant %s: %w", errors.ErrUpstream, participant.ID, err)
	}

	msg := event.NonHostTransfer{
		ConferenceID:  conferenceID,
		ParticipantID: participant.ID,
		Direction:     domain.TransferOut,
	}
	if err := s.hub.NotifyGroups(ctx, LeaveGroups(conference), msg); err != nil {
		s.log.Warn("Leave not fully delivered", "conference_id", conferenceID, "error", err)
	}
	return nil
}

// HandRaiseGroups is the participant, every host and every linked participant.
func HandRaiseGroups(participant *domain.Participant, conference *domain.Conference) []domain.GroupKey {
	groups := []domain.GroupKey{participant.GroupKey()}
	groups = append(groups, hostGroups(conference)...)
	for _, linked := range domain.LinkedParticipantsOf(participant, conference) {
		groups = append(groups, linked.GroupKey())
	}
	return lo.Uniq(groups)
}

// LeaveGroups is every non staff participant plus the conference group.
func LeaveGroups(conference *domain.Conference) []domain.GroupKey {
	groups := lo.FilterMap(conference.Participants, func(p *domain.Participant, _ int) (domain.GroupKey, bool) {
		return p.GroupKey(), !p.IsStaffMember()
	})
	return lo.Uniq(append(groups, domain.ConferenceGroup(conference.ID)))
}
