package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrConferenceNotFound        = fmt.Errorf("conference not found")
	ErrParticipantNotFound       = fmt.Errorf("participant not found")
	ErrRoomNotFound              = fmt.Errorf("room not found")
	ErrInvitationNotFound        = fmt.Errorf("consultation invitation not found")
	ErrInvitationAlreadyAnswered = fmt.Errorf("consultation invitation already answered")
	ErrUpstream                  = fmt.Errorf("upstream service failure")
	ErrMessageNotAllowed         = fmt.Errorf("message not allowed")
	ErrInvalidRequest            = fmt.Errorf("invalid request")
	ErrUnauthenticated           = fmt.Errorf("unauthenticated")
	ErrWorkerPanic               = fmt.Errorf("worker panic")
	ErrEmptyWords                = fmt.Errorf("no words have been found")
)

// MapToHTTPStatus translates the taxonomy into the status code the HTTP edge returns.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrConferenceNotFound),
		errors.Is(err, ErrParticipantNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrInvitationNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvitationAlreadyAnswered):
		return http.StatusConflict
	case errors.Is(err, ErrMessageNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
