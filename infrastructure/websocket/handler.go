package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hearing-hub/auth"
	"hearing-hub/contract"
	"hearing-hub/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	SubscribeConference   = "subscribe_conference"
	UnsubscribeConference = "unsubscribe_conference"
	Subscribed            = "subscribed"
	SubscriptionRefused   = "subscription_refused"
)

type conferenceSubscription struct {
	ConferenceID uuid.UUID `json:"conferenceId"`
}

// Handler upgrades authenticated requests to hub connections.
//
// Every connection joins the group of its user, officers also join the officers
// group. A client watching a conference subscribes to it with a
// subscribe_conference frame; only officers and participants of the conference
// are accepted.
type Handler struct {
	log          *slog.Logger
	registry     contract.IGroupRegistry
	conferences  contract.IConferenceService
	upgrader     websocket.Upgrader
	bufferSize   int
	writeTimeout time.Duration
}

func NewHandler(log *slog.Logger, registry contract.IGroupRegistry, conferences contract.IConferenceService,
	bufferSize int, writeTimeout time.Duration) *Handler {
	return &Handler{
		log:         log,
		registry:    registry,
		conferences: conferences,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Allow all origins, the bearer token is what authenticates the caller
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		bufferSize:   bufferSize,
		writeTimeout: writeTimeout,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	connectionID := uuid.NewString()
	sink := NewSink(h.log, conn, h.bufferSize, h.writeTimeout)
	h.registry.Register(connectionID, sink)
	h.registry.Join(connectionID, identity.Username.GroupKey())
	if identity.IsAdmin {
		h.registry.Join(connectionID, domain.VhOfficersGroup)
	}
	h.log.Info("Hub connection opened", "connection_id", connectionID, "admin", identity.IsAdmin)

	defer func() {
		h.registry.Unregister(connectionID)
		sink.Close()
		h.log.Info("Hub connection closed", "connection_id", connectionID)
	}()

	go sink.WritePump()
	h.readLoop(r, conn, sink, connectionID, identity)
}

// readLoop handles subscription frames until the client goes away.
func (h *Handler) readLoop(r *http.Request, conn *websocket.Conn, sink *Sink, connectionID string, identity auth.Identity) {
	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("Websocket read failed", "connection_id", connectionID, "error", err)
			}
			return
		}

		switch frame.Type {
		case SubscribeConference:
			sub, ok := decodeSubscription(frame)
			if !ok || !h.maySubscribe(r, identity, sub.ConferenceID) {
				h.reply(r, sink, SubscriptionRefused, sub)
				continue
			}
			h.registry.Join(connectionID, domain.ConferenceGroup(sub.ConferenceID))
			h.reply(r, sink, Subscribed, sub)
		case UnsubscribeConference:
			if sub, ok := decodeSubscription(frame); ok {
				h.registry.Leave(connectionID, domain.ConferenceGroup(sub.ConferenceID))
			}
		default:
			h.log.Debug("Unknown frame ignored", "type", frame.Type)
		}
	}
}

func decodeSubscription(frame Frame) (conferenceSubscription, bool) {
	var sub conferenceSubscription
	if err := json.Unmarshal(frame.Payload, &sub); err != nil {
		return conferenceSubscription{}, false
	}
	return sub, sub.ConferenceID != uuid.Nil
}

func (h *Handler) maySubscribe(r *http.Request, identity auth.Identity, conferenceID uuid.UUID) bool {
	conference, err := h.conferences.GetConference(r.Context(), conferenceID)
	if err != nil {
		h.log.Debug("Subscription to unavailable conference", "conference_id", conferenceID, "error", err)
		return false
	}
	return identity.IsAdmin || conference.HasParticipant(identity.Username.String())
}

func (h *Handler) reply(r *http.Request, sink *Sink, kind string, sub conferenceSubscription) {
	_ = sink.Consume(r.Context(), reply{kind: kind, ConferenceID: sub.ConferenceID})
}

type reply struct {
	kind         string
	ConferenceID uuid.UUID `json:"conferenceId"`
}

func (r reply) Type() string { return r.kind }
