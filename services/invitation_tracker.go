package services

import (
	"fmt"
	"sync"
	"time"

	"hearing-hub/domain"
	"hearing-hub/errors"
	"hearing-hub/observability"

	"github.com/google/uuid"
)

// InvitationTracker holds pending consultation invitations.
// At most one invitation is pending per InvitationKey: a newer request supersedes the older one.
type InvitationTracker struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.ConsultationInvitation
	pending map[domain.InvitationKey]uuid.UUID
	now     func() time.Time
}

func NewInvitationTracker() *InvitationTracker {
	return &InvitationTracker{
		byID:    make(map[uuid.UUID]*domain.ConsultationInvitation),
		pending: make(map[domain.InvitationKey]uuid.UUID),
		now:     time.Now,
	}
}

// Request records a fresh invitation and returns it.
// Any invitation still pending for the same key is dropped.
func (t *InvitationTracker) Request(conferenceID uuid.UUID, roomLabel string, requestedBy, requestedFor uuid.UUID) domain.ConsultationInvitation {
	invitation := &domain.ConsultationInvitation{
		ID:           uuid.New(),
		ConferenceID: conferenceID,
		RoomLabel:    roomLabel,
		RequestedBy:  requestedBy,
		RequestedFor: requestedFor,
		CreatedAt:    t.now(),
		State:        domain.InvitationRequested,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if previous, ok := t.pending[invitation.Key()]; ok {
		delete(t.byID, previous)
	}
	t.byID[invitation.ID] = invitation
	t.pending[invitation.Key()] = invitation.ID
	return *invitation
}

// Answer moves a pending invitation to the state matching answer.
// Only the invited participant can answer. Answered invitations are kept until Prune.
func (t *InvitationTracker) Answer(invitationID, requestedFor uuid.UUID, answer domain.ConsultationAnswer) (domain.ConsultationInvitation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	invitation, ok := t.byID[invitationID]
	if !ok || invitation.RequestedFor != requestedFor {
		return domain.ConsultationInvitation{}, fmt.Errorf("%w: %s", errors.ErrInvitationNotFound, invitationID)
	}
	if !invitation.Pending() {
		return *invitation, fmt.Errorf("%w: %s is %s", errors.ErrInvitationAlreadyAnswered, invitationID, invitation.State)
	}
	invitation.State = domain.StateFor(answer)
	observability.ConsultationInvitations.WithLabelValues(string(invitation.State)).Inc()

	if t.pending[invitation.Key()] == invitationID {
		delete(t.pending, invitation.Key())
	}
	return *invitation, nil
}

// Get returns a tracked invitation, pending or answered.
func (t *InvitationTracker) Get(invitationID uuid.UUID) (domain.ConsultationInvitation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	invitation, ok := t.byID[invitationID]
	if !ok {
		return domain.ConsultationInvitation{}, false
	}
	return *invitation, true
}

// Expired lists pending invitations created before the cutoff.
func (t *InvitationTracker) Expired(cutoff time.Time) []domain.ConsultationInvitation {
	t.mu.Lock()
	defer t.mu.Unlock()
	var expired []domain.ConsultationInvitation
	for _, invitation := range t.byID {
		if invitation.Pending() && invitation.CreatedAt.Before(cutoff) {
			expired = append(expired, *invitation)
		}
	}
	return expired
}

// Prune forgets answered invitations created before the cutoff.
func (t *InvitationTracker) Prune(cutoff time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	pruned := 0
	for id, invitation := range t.byID {
		if !invitation.Pending() && invitation.CreatedAt.Before(cutoff) {
			delete(t.byID, id)
			pruned++
		}
	}
	return pruned
}

func (t *InvitationTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byID)
}
