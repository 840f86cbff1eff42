// Package messaging decides who may exchange instant messages and builds the
// messages once a send is allowed.
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hearing-hub/contract"
	"hearing-hub/domain"

	"github.com/google/uuid"
)

type InstantMessageRules struct {
	log      *slog.Logger
	profiles contract.IUserProfileClient
	now      func() time.Time
}

func NewInstantMessageRules(log *slog.Logger, profiles contract.IUserProfileClient) *InstantMessageRules {
	return &InstantMessageRules{log: log, profiles: profiles, now: time.Now}
}

// CanExchangeMessage reports whether from may send a message to to in the conference.
//
// The sender must be a participant of the conference. A participant may only
// message the admin channel; only an admin may message a participant directly.
// A to that is neither the admin channel nor a participant id of the conference
// is denied before any profile lookup.
// A false result carries no reason on purpose; the error is reserved for lookup failures.
func (r *InstantMessageRules) CanExchangeMessage(ctx context.Context, conference *domain.Conference, to, from string) (bool, error) {
	recipient, ok := domain.ParseRecipient(to)
	if !ok {
		return false, nil
	}

	if !conference.HasParticipant(from) {
		return false, nil
	}
	if recipient.IsAdmin() {
		return true, nil
	}

	if _, ok := conference.ParticipantByID(recipient.ParticipantID); !ok {
		return false, nil
	}

	profile, err := r.profiles.GetUser(ctx, from)
	if err != nil {
		return false, fmt.Errorf("user profile of sender: %w", err)
	}
	if !profile.IsAdmin {
		r.log.Debug("Direct message to participant refused, sender is not an admin",
			"conference_id", conference.ID)
	}
	return profile.IsAdmin, nil
}

// BuildAdminToParticipantMessage is used when an admin messages a specific participant.
func (r *InstantMessageRules) BuildAdminToParticipantMessage(conference *domain.Conference, participant *domain.Participant,
	admin domain.UserProfile, message string, messageUUID uuid.UUID) domain.SendMessageDto {
	return domain.SendMessageDto{
		Conference:          conference,
		MessageUUID:         orNew(messageUUID),
		Timestamp:           r.now().UTC(),
		From:                admin.Username,
		FromDisplayName:     admin.Name(),
		To:                  participant.ID.String(),
		Message:             message,
		ParticipantUsername: participant.Username,
	}
}

// BuildParticipantToAdminMessage is used when a participant messages the admin channel.
func (r *InstantMessageRules) BuildParticipantToAdminMessage(conference *domain.Conference, participant *domain.Participant,
	message string, messageUUID uuid.UUID) domain.SendMessageDto {
	return domain.SendMessageDto{
		Conference:          conference,
		MessageUUID:         orNew(messageUUID),
		Timestamp:           r.now().UTC(),
		From:                participant.Username.String(),
		FromDisplayName:     participant.DisplayName,
		To:                  domain.AdminChannel,
		Message:             message,
		ParticipantUsername: participant.Username,
	}
}

func orNew(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}
