package services

import (
	"context"
	"fmt"
	"log/slog"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/errors"
	"hearing-hub/messaging"
	"hearing-hub/observability"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SendMessageCommand struct {
	ConferenceID uuid.UUID `validate:"required"`
	To           string    `validate:"required"`
	From         string    `validate:"required"`
	Message      string    `validate:"required,max=4000"`
	MessageUUID  uuid.UUID
}

// InstantMessageService carries messages between a participant and the officers.
type InstantMessageService struct {
	log         *slog.Logger
	conferences contract.IConferenceService
	rules       *messaging.InstantMessageRules
	profiles    contract.IUserProfileClient
	moderator   contract.IModerator
	repository  contract.IMessageRepository
	hub         contract.IEventHub
	validator   *validator.Validate
}

func NewInstantMessageService(log *slog.Logger, conferences contract.IConferenceService, rules *messaging.InstantMessageRules,
	profiles contract.IUserProfileClient, moderator contract.IModerator, repository contract.IMessageRepository,
	hub contract.IEventHub) *InstantMessageService {
	return &InstantMessageService{
		log:         log,
		conferences: conferences,
		rules:       rules,
		profiles:    profiles,
		moderator:   moderator,
		repository:  repository,
		hub:         hub,
		validator:   validator.New(),
	}
}

// Send checks the sender may reach the recipient, then stores and delivers the message
// to the participant of the conversation and to the officers.
// A refused send is ErrMessageNotAllowed without any detail.
func (s *InstantMessageService) Send(ctx context.Context, cmd SendMessageCommand) (domain.SendMessageDto, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return domain.SendMessageDto{}, fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	conference, err := s.conferences.GetConference(ctx, cmd.ConferenceID)
	if err != nil {
		return domain.SendMessageDto{}, err
	}

	allowed, err := s.rules.CanExchangeMessage(ctx, conference, cmd.To, cmd.From)
	if err != nil {
		return domain.SendMessageDto{}, fmt.Errorf("%w: %w", errors.ErrUpstream, err)
	}
	if !allowed {
		observability.InstantMessages.WithLabelValues("denied").Inc()
		return domain.SendMessageDto{}, errors.ErrMessageNotAllowed
	}

	dto, participant, err := s.build(ctx, conference, cmd)
	if err != nil {
		return domain.SendMessageDto{}, err
	}
	if s.moderator != nil {
		var words []string
		dto.Message, words = s.moderator.Censor(dto.Message)
		if len(words) > 0 {
			s.log.Info("Instant message censored", "conference_id", conference.ID, "words", len(words))
		}
	}

	if err := s.repository.StoreMessage(dto.ToInstantMessage()); err != nil {
		return domain.SendMessageDto{}, fmt.Errorf("store message %s: %w", dto.MessageUUID, err)
	}

	msg := event.ReceiveMessage{
		ConferenceID:    conference.ID,
		MessageUUID:     dto.MessageUUID,
		From:            dto.From,
		FromDisplayName: dto.FromDisplayName,
		To:              dto.To,
		Message:         dto.Message,
		Timestamp:       dto.Timestamp,
	}
	groups := []domain.GroupKey{participant.GroupKey(), domain.VhOfficersGroup}
	if err := s.hub.NotifyGroups(ctx, groups, msg); err != nil {
		s.log.Warn("Instant message not fully delivered", "conference_id", conference.ID, "error", err)
	}
	observability.InstantMessages.WithLabelValues("sent").Inc()
	return dto, nil
}

func (s *InstantMessageService) build(ctx context.Context, conference *domain.Conference,
	cmd SendMessageCommand) (domain.SendMessageDto, *domain.Participant, error) {
	recipient, _ := domain.ParseRecipient(cmd.To)
	if recipient.IsAdmin() {
		sender, ok := conference.ParticipantByUsername(cmd.From)
		if !ok {
			return domain.SendMessageDto{}, nil, errors.ErrMessageNotAllowed
		}
		return s.rules.BuildParticipantToAdminMessage(conference, sender, cmd.Message, cmd.MessageUUID), sender, nil
	}

	target, ok := conference.ParticipantByID(recipient.ParticipantID)
	if !ok {
		return domain.SendMessageDto{}, nil, errors.ErrMessageNotAllowed
	}
	admin, err := s.profiles.GetUser(ctx, cmd.From)
	if err != nil {
		return domain.SendMessageDto{}, nil, fmt.Errorf("%w: %w", errors.ErrUpstream, err)
	}
	if admin.Username == "" {
		admin.Username = domain.NewUsername(cmd.From).String()
	}
	return s.rules.BuildAdminToParticipantMessage(conference, target, admin, cmd.Message, cmd.MessageUUID), target, nil
}

// History is the conversation between the officers and one participant, oldest first.
func (s *InstantMessageService) History(ctx context.Context, conferenceID uuid.UUID, participant string) ([]domain.InstantMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repository.GetMessages(conferenceID, domain.NewUsername(participant))
}

// PurgeConference drops the history of a closed conference and evicts it from the cache.
func (s *InstantMessageService) PurgeConference(conferenceID uuid.UUID) error {
	if err := s.repository.DeleteConference(conferenceID); err != nil {
		return err
	}
	s.conferences.ForgetConference(conferenceID)
	s.log.Info("Instant message history purged", "conference_id", conferenceID)
	return nil
}
