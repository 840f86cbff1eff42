package api

import (
	"io"
	"net/http"

	"hearing-hub/auth"
	"hearing-hub/domain"
	"hearing-hub/errors"
	"hearing-hub/handlers"
	"hearing-hub/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxEventBody = 1 << 20

type sendMessageRequest struct {
	To          string    `json:"to" validate:"required"`
	Message     string    `json:"message" validate:"required"`
	MessageUUID uuid.UUID `json:"messageUuid"`
}

type handStatusRequest struct {
	IsRaised bool `json:"isRaised"`
}

type consultationRequest struct {
	RoomLabel    string    `json:"roomLabel" validate:"required"`
	RequestedBy  uuid.UUID `json:"requestedBy" validate:"required"`
	RequestedFor uuid.UUID `json:"requestedFor" validate:"required"`
}

type consultationCreated struct {
	InvitationID uuid.UUID `json:"invitationId"`
}

type consultationAnswerRequest struct {
	InvitationID uuid.UUID                 `json:"invitationId" validate:"required"`
	RoomLabel    string                    `json:"roomLabel" validate:"required"`
	RequestedFor uuid.UUID                 `json:"requestedFor" validate:"required"`
	Answer       domain.ConsultationAnswer `json:"answer" validate:"required,oneof=Accepted Rejected"`
}

type lockRequest struct {
	Locked bool `json:"locked"`
}

// The sender is always the authenticated caller.
func (rt router) sendMessage(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	var body sendMessageRequest
	if err := rt.decode(r, &body); err != nil {
		rt.writeError(w, r, err)
		return
	}
	identity, _ := auth.IdentityFromContext(r.Context())

	dto, err := rt.deps.Messages.Send(r.Context(), services.SendMessageCommand{
		ConferenceID: conferenceID,
		To:           body.To,
		From:         identity.Username.String(),
		Message:      body.Message,
		MessageUUID:  body.MessageUUID,
	})
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

// Participants read their own conversation only, officers read any.
func (rt router) messageHistory(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	identity, _ := auth.IdentityFromContext(r.Context())
	participant := r.URL.Query().Get("participant")
	if participant == "" {
		participant = identity.Username.String()
	}
	if !identity.IsAdmin && !identity.Username.Matches(participant) {
		rt.writeError(w, r, errors.ErrMessageNotAllowed)
		return
	}

	messages, err := rt.deps.Messages.History(r.Context(), conferenceID, participant)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if messages == nil {
		messages = []domain.InstantMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

func (rt router) purgeMessages(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if err := rt.deps.Messages.PurgeConference(conferenceID); err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt router) handStatus(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	participantID, err := pathUUID(r, "participantId")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	var body handStatusRequest
	if err := rt.decode(r, &body); err != nil {
		rt.writeError(w, r, err)
		return
	}
	if err := rt.deps.Management.UpdateParticipantHandStatus(r.Context(), conferenceID, participantID, body.IsRaised); err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt router) leaveConference(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	identity, _ := auth.IdentityFromContext(r.Context())
	if err := rt.deps.Management.ParticipantLeaveConference(r.Context(), conferenceID, identity.Username.String()); err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt router) requestConsultation(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	var body consultationRequest
	if err := rt.decode(r, &body); err != nil {
		rt.writeError(w, r, err)
		return
	}
	invitationID, err := rt.deps.Consultations.RequestConsultation(r.Context(), conferenceID, body.RoomLabel, body.RequestedBy, body.RequestedFor)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, consultationCreated{InvitationID: invitationID})
}

func (rt router) respondToConsultation(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	var body consultationAnswerRequest
	if err := rt.decode(r, &body); err != nil {
		rt.writeError(w, r, err)
		return
	}
	err = rt.deps.Consultations.RespondToConsultation(r.Context(), conferenceID, body.InvitationID, body.RoomLabel, body.RequestedFor, body.Answer)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt router) lockRoom(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	var body lockRequest
	if err := rt.decode(r, &body); err != nil {
		rt.writeError(w, r, err)
		return
	}
	if err := rt.deps.Consultations.LockRoom(r.Context(), conferenceID, mux.Vars(r)["label"], body.Locked); err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rt router) leaveRoom(w http.ResponseWriter, r *http.Request) {
	conferenceID, err := pathUUID(r, "id")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	participantID, err := pathUUID(r, "participantId")
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if err := rt.deps.Consultations.LeaveRoom(r.Context(), conferenceID, participantID); err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// internalEvent accepts the events published by the booking and allocation backends.
func (rt router) internalEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBody))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	evt, err := handlers.Decode(mux.Vars(r)["type"], body)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if err := rt.deps.Events.Handle(r.Context(), evt); err != nil {
		rt.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
