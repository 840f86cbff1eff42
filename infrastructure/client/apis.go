package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/errors"

	"github.com/google/uuid"
)

type ConferenceDataClient struct{ api apiClient }

var _ contract.IConferenceDataClient = (*ConferenceDataClient)(nil)

func NewConferenceDataClient(log *slog.Logger, baseURL string, timeout time.Duration) *ConferenceDataClient {
	return &ConferenceDataClient{api: newAPIClient(log, baseURL, "conference", timeout, errors.ErrConferenceNotFound)}
}

func (c *ConferenceDataClient) GetConferenceDetails(ctx context.Context, conferenceID uuid.UUID) (*domain.Conference, error) {
	var conference domain.Conference
	if err := c.api.do(ctx, "get_conference_details", http.MethodGet, "/conferences/"+conferenceID.String(), nil, &conference); err != nil {
		return nil, err
	}
	if conference.ID != conferenceID {
		return nil, fmt.Errorf("%w: conference api answered %s for %s", errors.ErrUpstream, conference.ID, conferenceID)
	}
	return &conference, nil
}

type UserProfileClient struct{ api apiClient }

var _ contract.IUserProfileClient = (*UserProfileClient)(nil)

// NewUserProfileClient does not map 404: an unknown user is an upstream failure.
func NewUserProfileClient(log *slog.Logger, baseURL string, timeout time.Duration) *UserProfileClient {
	return &UserProfileClient{api: newAPIClient(log, baseURL, "user", timeout, nil)}
}

func (c *UserProfileClient) GetUser(ctx context.Context, username string) (domain.UserProfile, error) {
	var profile domain.UserProfile
	path := "/users?username=" + url.QueryEscape(domain.NewUsername(username).String())
	if err := c.api.do(ctx, "get_user", http.MethodGet, path, nil, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

type VideoSessionClient struct{ api apiClient }

var _ contract.IVideoSessionClient = (*VideoSessionClient)(nil)

func NewVideoSessionClient(log *slog.Logger, baseURL string, timeout time.Duration) *VideoSessionClient {
	return &VideoSessionClient{api: newAPIClient(log, baseURL, "video", timeout, errors.ErrParticipantNotFound)}
}

type transferRequest struct {
	TransferType domain.TransferType `json:"transferType"`
}

func (c *VideoSessionClient) TransferParticipant(ctx context.Context, conferenceID, participantID uuid.UUID, transferType domain.TransferType) error {
	path := fmt.Sprintf("/conferences/%s/participants/%s/transfer", conferenceID, participantID)
	return c.api.do(ctx, "transfer_participant", http.MethodPost, path, transferRequest{TransferType: transferType}, nil)
}
