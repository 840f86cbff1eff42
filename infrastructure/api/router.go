// Package api is the HTTP edge of the hub: REST commands, internal events,
// the websocket endpoint and the operational routes.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"hearing-hub/auth"
	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/errors"
	"hearing-hub/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MessageService interface {
	Send(ctx context.Context, cmd services.SendMessageCommand) (domain.SendMessageDto, error)
	History(ctx context.Context, conferenceID uuid.UUID, participant string) ([]domain.InstantMessage, error)
	PurgeConference(conferenceID uuid.UUID) error
}

type ManagementService interface {
	UpdateParticipantHandStatus(ctx context.Context, conferenceID, participantID uuid.UUID, isRaised bool) error
	ParticipantLeaveConference(ctx context.Context, conferenceID uuid.UUID, username string) error
}

type ConsultationService interface {
	RequestConsultation(ctx context.Context, conferenceID uuid.UUID, roomLabel string, requestedBy, requestedFor uuid.UUID) (uuid.UUID, error)
	RespondToConsultation(ctx context.Context, conferenceID, invitationID uuid.UUID, roomLabel string, requestedFor uuid.UUID, answer domain.ConsultationAnswer) error
	LockRoom(ctx context.Context, conferenceID uuid.UUID, roomLabel string, locked bool) error
	LeaveRoom(ctx context.Context, conferenceID, participantID uuid.UUID) error
}

type EventDispatcher interface {
	Handle(ctx context.Context, evt event.InternalEvent) error
}

// Dependencies are the collaborators the router hands requests to.
// Hub and Inspector are optional.
type Dependencies struct {
	Tokens        *auth.TokenService
	Messages      MessageService
	Management    ManagementService
	Consultations ConsultationService
	Events        EventDispatcher
	Hub           http.Handler
	Inspector     http.Handler
}

type router struct {
	log      *slog.Logger
	deps     Dependencies
	validate *validator.Validate
}

func NewRouter(log *slog.Logger, deps Dependencies) *mux.Router {
	rt := router{log: log, deps: deps, validate: validator.New()}

	r := mux.NewRouter()
	r.Use(metricsMiddleware, auth.Middleware(deps.Tokens))

	r.HandleFunc("/health", health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if deps.Hub != nil {
		r.Handle("/hub", deps.Hub)
	}
	if deps.Inspector != nil {
		r.Handle("/debug/store", adminOnly(deps.Inspector)).Methods(http.MethodGet)
	}

	c := r.PathPrefix("/conferences/{id}").Subrouter()
	c.HandleFunc("/messages", rt.sendMessage).Methods(http.MethodPost)
	c.HandleFunc("/messages", rt.messageHistory).Methods(http.MethodGet)
	c.Handle("/messages", adminOnly(http.HandlerFunc(rt.purgeMessages))).Methods(http.MethodDelete)
	c.HandleFunc("/participants/{participantId}/hand", rt.handStatus).Methods(http.MethodPut)
	c.HandleFunc("/participants/{participantId}/leave-room", rt.leaveRoom).Methods(http.MethodPost)
	c.HandleFunc("/leave", rt.leaveConference).Methods(http.MethodPost)
	c.HandleFunc("/consultations", rt.requestConsultation).Methods(http.MethodPost)
	c.HandleFunc("/consultations/respond", rt.respondToConsultation).Methods(http.MethodPost)
	c.HandleFunc("/rooms/{label}/lock", rt.lockRoom).Methods(http.MethodPut)

	r.Handle("/internal-events/{type}", adminOnly(http.HandlerFunc(rt.internalEvent))).Methods(http.MethodPost)
	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError hides internal failures behind their status text.
func (rt router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.MapToHTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		rt.log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: message})
}

// decode reads and validates a JSON body.
func (rt router) decode(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	if err := rt.validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	return id, nil
}
