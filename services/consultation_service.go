package services

import (
	"context"
	"log/slog"
	"time"

	"hearing-hub/contract"
	"hearing-hub/domain"

	"github.com/google/uuid"
)

// ConsultationService turns caller intent into room changes and notifier calls.
type ConsultationService struct {
	log         *slog.Logger
	conferences contract.IConferenceService
	notifier    contract.IConsultationNotifier
	tracker     *InvitationTracker
	now         func() time.Time
}

func NewConsultationService(log *slog.Logger, conferences contract.IConferenceService,
	notifier contract.IConsultationNotifier, tracker *InvitationTracker) *ConsultationService {
	return &ConsultationService{
		log:         log,
		conferences: conferences,
		notifier:    notifier,
		tracker:     tracker,
		now:         time.Now,
	}
}

func (s *ConsultationService) RequestConsultation(ctx context.Context, conferenceID uuid.UUID, roomLabel string,
	requestedBy, requestedFor uuid.UUID) (uuid.UUID, error) {
	conference, err := s.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return uuid.Nil, err
	}
	return s.notifier.NotifyConsultationRequest(ctx, conference, roomLabel, requestedBy, requestedFor)
}

// RespondToConsultation answers an invitation. On acceptance the participant is
// moved into the room before the transfer and the room update go out.
func (s *ConsultationService) RespondToConsultation(ctx context.Context, conferenceID, invitationID uuid.UUID,
	roomLabel string, requestedFor uuid.UUID, answer domain.ConsultationAnswer) error {
	conference, err := s.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return err
	}
	if err := s.notifier.NotifyConsultationResponse(ctx, conference, invitationID, roomLabel, requestedFor, answer); err != nil {
		return err
	}
	if answer != domain.ConsultationAccepted {
		return nil
	}

	var room domain.Room
	conference, err = s.conferences.UpdateConference(ctx, conferenceID, func(c *domain.Conference) error {
		var err error
		room, err = c.UpdateParticipantRoom(requestedFor, roomLabel)
		return err
	})
	if err != nil {
		return err
	}
	if err := s.notifier.NotifyParticipantTransferring(ctx, conference, requestedFor, roomLabel); err != nil {
		return err
	}
	return s.notifier.NotifyRoomUpdate(ctx, conference, room)
}

func (s *ConsultationService) LockRoom(ctx context.Context, conferenceID uuid.UUID, roomLabel string, locked bool) error {
	var room domain.Room
	conference, err := s.conferences.UpdateConference(ctx, conferenceID, func(c *domain.Conference) error {
		var err error
		room, err = c.SetRoomLock(roomLabel, locked)
		return err
	})
	if err != nil {
		return err
	}
	return s.notifier.NotifyRoomUpdate(ctx, conference, room)
}

func (s *ConsultationService) LeaveRoom(ctx context.Context, conferenceID, participantID uuid.UUID) error {
	var room domain.Room
	conference, err := s.conferences.UpdateConference(ctx, conferenceID, func(c *domain.Conference) error {
		var err error
		room, err = c.RemoveParticipantFromRoom(participantID)
		return err
	})
	if err != nil {
		return err
	}
	return s.notifier.NotifyRoomUpdate(ctx, conference, room)
}

// ExpireInvitations times out every invitation pending for longer than ttl and
// forgets answered ones of the same age. It returns how many were timed out.
func (s *ConsultationService) ExpireInvitations(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := s.now().Add(-ttl)
	expired := 0
	for _, invitation := range s.tracker.Expired(cutoff) {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		conference, err := s.conferences.GetConference(ctx, invitation.ConferenceID)
		if err != nil {
			s.log.Warn("Conference of expired invitation unavailable",
				"conference_id", invitation.ConferenceID, "invitation_id", invitation.ID, "error", err)
			// Still time it out so it does not linger
			if _, err := s.tracker.Answer(invitation.ID, invitation.RequestedFor, domain.ConsultationTimedOut); err == nil {
				expired++
			}
			continue
		}
		err = s.notifier.NotifyConsultationResponse(ctx, conference, invitation.ID, invitation.RoomLabel,
			invitation.RequestedFor, domain.ConsultationTimedOut)
		if err != nil {
			// Answered in the meantime
			s.log.Debug("Invitation not expired", "invitation_id", invitation.ID, "error", err)
			continue
		}
		expired++
	}
	if pruned := s.tracker.Prune(cutoff); pruned > 0 {
		s.log.Debug("Answered invitations pruned", "count", pruned)
	}
	return expired, nil
}
