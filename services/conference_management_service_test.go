package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/errors"
	"hearing-hub/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConferenceManagementService_HandRaise_Individual_Notifies_Self_And_Judge(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	judge := participant("Judge@hearings.net", domain.RoleJudge)
	individual := participant("individual@hearings.net", domain.RoleIndividual)
	conference := newConference(judge, individual)
	conferences := conferenceServiceFor(t, ctrl, conference)
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferences, mocks.NewMockIVideoSessionClient(ctrl), hub)

	// Then exactly the individual and the judge are notified
	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, groups []domain.GroupKey, n event.Notification) error {
			req.ElementsMatch([]domain.GroupKey{"individual@hearings.net", "judge@hearings.net"}, groups)
			req.Equal(event.ParticipantHandRaiseMessage{
				ParticipantID: individual.ID,
				ConferenceID:  conference.ID,
				IsRaised:      true,
			}, n)
			return nil
		}).Times(1)

	// When the individual raises their hand
	err := service.UpdateParticipantHandStatus(context.Background(), conference.ID, individual.ID, true)
	req.NoError(err)

	// And the hand is stored in the cached conference
	cached, err := conferences.GetConference(context.Background(), conference.ID)
	req.NoError(err)
	p, ok := cached.ParticipantByID(individual.ID)
	req.True(ok)
	req.True(p.HandRaised)
}

func TestConferenceManagementService_HandRaise_Judicial_Office_Holder_Notifies_Other_JOHs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	joh1 := participant("joh1@hearings.net", domain.RoleJudicialOfficeHolder)
	joh2 := participant("joh2@hearings.net", domain.RoleJudicialOfficeHolder)
	joh3 := participant("joh3@hearings.net", domain.RoleJudicialOfficeHolder)
	interpreter := participant("interpreter@hearings.net", domain.RoleIndividual)
	// Explicit links are ignored for a judicial office holder
	joh1.LinkedParticipants = []domain.LinkedParticipant{{LinkedID: interpreter.ID, LinkType: domain.LinkTypeInterpreter}}
	conference := newConference(joh1, joh2, joh3, interpreter)
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferenceServiceFor(t, ctrl, conference),
		mocks.NewMockIVideoSessionClient(ctrl), hub)

	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, groups []domain.GroupKey, n event.Notification) error {
			req.ElementsMatch([]domain.GroupKey{joh1.GroupKey(), joh2.GroupKey(), joh3.GroupKey()}, groups)
			return nil
		}).Times(1)

	err := service.UpdateParticipantHandStatus(context.Background(), conference.ID, joh1.ID, true)
	req.NoError(err)
}

func TestConferenceManagementService_HandRaise_Notifies_Explicit_Links(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	judge := participant("judge@hearings.net", domain.RoleJudge)
	individual := participant("individual@hearings.net", domain.RoleIndividual)
	interpreter := participant("interpreter@hearings.net", domain.RoleIndividual)
	individual.LinkedParticipants = []domain.LinkedParticipant{
		{LinkedID: interpreter.ID, LinkType: domain.LinkTypeInterpreter},
		{LinkedID: uuid.New(), LinkType: domain.LinkTypeInterpreter}, // not in the conference
	}
	conference := newConference(judge, individual, interpreter)
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferenceServiceFor(t, ctrl, conference),
		mocks.NewMockIVideoSessionClient(ctrl), hub)

	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, groups []domain.GroupKey, n event.Notification) error {
			req.ElementsMatch([]domain.GroupKey{individual.GroupKey(), judge.GroupKey(), interpreter.GroupKey()}, groups)
			return nil
		}).Times(1)

	err := service.UpdateParticipantHandStatus(context.Background(), conference.ID, individual.ID, false)
	req.NoError(err)
}

func TestConferenceManagementService_HandRaise_Unknown_Participant(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	conference := newConference(participant("judge@hearings.net", domain.RoleJudge))
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferenceServiceFor(t, ctrl, conference),
		mocks.NewMockIVideoSessionClient(ctrl), hub)

	// Then nothing is broadcast
	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	hub.EXPECT().NotifyGroup(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.UpdateParticipantHandStatus(context.Background(), conference.ID, uuid.New(), true)

	req.ErrorIs(err, errors.ErrParticipantNotFound)
}

func TestConferenceManagementService_Leave_Notifies_Non_Staff_And_Conference(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	leaving := participant("Individual@Hearings.net", domain.RoleIndividual)
	representative := participant("rep@hearings.net", domain.RoleRepresentative)
	judge := participant("judge@hearings.net", domain.RoleJudge)
	staff := participant("clerk@hearings.net", domain.RoleStaffMember)
	conference := newConference(leaving, representative, judge, staff)
	video := mocks.NewMockIVideoSessionClient(ctrl)
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferenceServiceFor(t, ctrl, conference), video, hub)

	// Then the participant is dismissed exactly once
	dismiss := video.EXPECT().TransferParticipant(gomock.Any(), conference.ID, leaving.ID, domain.TransferDismiss).
		Return(nil).Times(1)
	// And the 3 non staff participants plus the conference group are notified
	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, groups []domain.GroupKey, n event.Notification) error {
			req.ElementsMatch([]domain.GroupKey{
				leaving.GroupKey(), representative.GroupKey(), judge.GroupKey(),
				domain.ConferenceGroup(conference.ID),
			}, groups)
			req.Equal(event.NonHostTransfer{
				ConferenceID:  conference.ID,
				ParticipantID: leaving.ID,
				Direction:     domain.TransferOut,
			}, n)
			return nil
		}).After(dismiss).Times(1)

	// When the participant leaves, found by a differently cased username
	err := service.ParticipantLeaveConference(context.Background(), conference.ID, "INDIVIDUAL@hearings.NET")

	req.NoError(err)
}

func TestConferenceManagementService_Leave_Unknown_Username(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	conference := newConference(participant("judge@hearings.net", domain.RoleJudge))
	video := mocks.NewMockIVideoSessionClient(ctrl)
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferenceServiceFor(t, ctrl, conference), video, hub)

	video.EXPECT().TransferParticipant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.ParticipantLeaveConference(context.Background(), conference.ID, "ghost@hearings.net")

	req.ErrorIs(err, errors.ErrParticipantNotFound)
}

func TestConferenceManagementService_Leave_Transfer_Failure_Aborts_Broadcast(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	leaving := participant("individual@hearings.net", domain.RoleIndividual)
	conference := newConference(leaving, participant("judge@hearings.net", domain.RoleJudge))
	video := mocks.NewMockIVideoSessionClient(ctrl)
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferenceServiceFor(t, ctrl, conference), video, hub)

	video.EXPECT().TransferParticipant(gomock.Any(), conference.ID, leaving.ID, domain.TransferDismiss).
		Return(fmt.Errorf("video api returned 503")).Times(1)
	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.ParticipantLeaveConference(context.Background(), conference.ID, leaving.Username.String())

	req.ErrorIs(err, errors.ErrUpstream)
	req.ErrorContains(err, "video api returned 503")
}

func TestConferenceManagementService_Unknown_Conference(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := mocks.NewMockIEventHub(ctrl)
	service := NewConferenceManagementService(log, conferenceServiceFor(t, ctrl, newConference()),
		mocks.NewMockIVideoSessionClient(ctrl), hub)

	hub.EXPECT().NotifyGroups(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.UpdateParticipantHandStatus(context.Background(), uuid.New(), uuid.New(), true)
	req.ErrorIs(err, errors.ErrConferenceNotFound)

	err = service.ParticipantLeaveConference(context.Background(), uuid.New(), "judge@hearings.net")
	req.ErrorIs(err, errors.ErrConferenceNotFound)
}
