package services

import (
	"context"
	"log/slog"

	"hearing-hub/contract"
	"hearing-hub/domain"

	"github.com/google/uuid"
)

// ConferenceService resolves conferences through the cache and the conference API.
type ConferenceService struct {
	log    *slog.Logger
	cache  contract.IConferenceCache
	client contract.IConferenceDataClient
}

var _ contract.IConferenceService = (*ConferenceService)(nil)

func NewConferenceService(log *slog.Logger, cache contract.IConferenceCache, client contract.IConferenceDataClient) *ConferenceService {
	return &ConferenceService{log: log, cache: cache, client: client}
}

func (s *ConferenceService) GetConference(ctx context.Context, conferenceID uuid.UUID) (*domain.Conference, error) {
	return s.cache.GetOrAdd(ctx, conferenceID, s.loader(conferenceID))
}

// UpdateConference applies fn to a private copy of the conference and stores it.
// Nothing is stored when fn fails or ctx is done.
func (s *ConferenceService) UpdateConference(ctx context.Context, conferenceID uuid.UUID, fn func(*domain.Conference) error) (*domain.Conference, error) {
	return s.cache.Mutate(ctx, conferenceID, s.loader(conferenceID), fn)
}

// ForgetConference drops the cached aggregate of a closed conference.
func (s *ConferenceService) ForgetConference(conferenceID uuid.UUID) {
	s.cache.Remove(conferenceID)
}

func (s *ConferenceService) loader(conferenceID uuid.UUID) contract.Loader {
	return func(ctx context.Context) (*domain.Conference, error) {
		s.log.Debug("Loading conference from conference API", "conference_id", conferenceID)
		return s.client.GetConferenceDetails(ctx, conferenceID)
	}
}
