package services

import (
	"log/slog"
	"testing"

	"hearing-hub/cache"
	"hearing-hub/domain"
	"hearing-hub/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"go.uber.org/mock/gomock"
)

func participant(username string, role domain.Role) *domain.Participant {
	return &domain.Participant{
		ID:          uuid.New(),
		Username:    domain.NewUsername(username),
		DisplayName: username,
		Role:        role,
	}
}

func newConference(participants ...*domain.Participant) *domain.Conference {
	return &domain.Conference{
		ID:           uuid.New(),
		Status:       domain.ConferenceInSession,
		CaseName:     "Smith vs Jones",
		Participants: participants,
	}
}

// conferenceServiceFor serves the conference through a real cache backed by a mocked conference API.
func conferenceServiceFor(t *testing.T, ctrl *gomock.Controller, conference *domain.Conference) *ConferenceService {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	client := mocks.NewMockIConferenceDataClient(ctrl)
	client.EXPECT().GetConferenceDetails(gomock.Any(), conference.ID).Return(conference, nil).AnyTimes()
	client.EXPECT().GetConferenceDetails(gomock.Any(), gomock.Not(conference.ID)).
		Return(nil, nil).AnyTimes()
	return NewConferenceService(log, cache.NewConferenceCache(log), client)
}
