// Package handlers turns internal events raised by the booking and allocation
// APIs into hub notifications.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/domain/event"
	"hearing-hub/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Handler Each kind of internal event has its own handler.
// Handlers are stateless: the same event handled twice sends the same notifications.
type Handler interface {
	Handle(ctx context.Context, evt event.InternalEvent) error
}

type NewConferenceAddedHandler struct {
	hub contract.IEventHub
}

func NewNewConferenceAddedHandler(hub contract.IEventHub) *NewConferenceAddedHandler {
	return &NewConferenceAddedHandler{hub: hub}
}

func (h *NewConferenceAddedHandler) Handle(ctx context.Context, evt event.InternalEvent) error {
	added, ok := evt.(event.NewConferenceAdded)
	if !ok {
		return invalidPayload(evt)
	}
	return h.hub.NotifyGroup(ctx, domain.VhOfficersGroup, event.NewConferenceAddedMessage{ConferenceID: added.ConferenceID})
}

// ParticipantsUpdatedHandler tells every participant and the officers about the new list.
// A cached conference gets the new list too.
type ParticipantsUpdatedHandler struct {
	log   *slog.Logger
	hub   contract.IEventHub
	cache contract.IConferenceCache
}

func NewParticipantsUpdatedHandler(log *slog.Logger, hub contract.IEventHub, cache contract.IConferenceCache) *ParticipantsUpdatedHandler {
	return &ParticipantsUpdatedHandler{log: log, hub: hub, cache: cache}
}

func (h *ParticipantsUpdatedHandler) Handle(ctx context.Context, evt event.InternalEvent) error {
	updated, ok := evt.(event.ParticipantsUpdated)
	if !ok {
		return invalidPayload(evt)
	}

	if _, cached := h.cache.Get(updated.ConferenceID); cached {
		_, err := h.cache.Mutate(ctx, updated.ConferenceID, notLoaded, func(c *domain.Conference) error {
			c.ReplaceParticipants(updated.Participants)
			return nil
		})
		if err != nil {
			h.log.Warn("Cached participants not replaced", "conference_id", updated.ConferenceID, "error", err)
		}
	}

	groups := lo.Map(updated.Participants, func(p *domain.Participant, _ int) domain.GroupKey {
		return p.GroupKey()
	})
	groups = append(groups, domain.VhOfficersGroup)
	msg := event.ParticipantsUpdatedMessage{
		ConferenceID: updated.ConferenceID,
		Participants: updated.Participants,
	}
	return h.hub.NotifyGroups(ctx, groups, msg)
}

type AllocationUpdatedHandler struct {
	hub contract.IEventHub
}

func NewAllocationUpdatedHandler(hub contract.IEventHub) *AllocationUpdatedHandler {
	return &AllocationUpdatedHandler{hub: hub}
}

func (h *AllocationUpdatedHandler) Handle(ctx context.Context, evt event.InternalEvent) error {
	updated, ok := evt.(event.AllocationUpdated)
	if !ok {
		return invalidPayload(evt)
	}
	officer := domain.NewUsername(updated.AllocatedOfficer.String())
	return h.hub.NotifyGroup(ctx, officer.GroupKey(), event.AllocationsUpdated{Allocations: updated.Allocations})
}

// Dispatcher routes an internal event to the handler registered for its name.
type Dispatcher struct {
	log       *slog.Logger
	handlers  map[string]Handler
	validator *validator.Validate
}

func NewDispatcher(log *slog.Logger) *Dispatcher {
	return &Dispatcher{log: log, handlers: make(map[string]Handler), validator: validator.New()}
}

func (d *Dispatcher) Register(name string, h Handler) *Dispatcher {
	d.handlers[name] = h
	return d
}

// NewDefaultDispatcher wires the three internal events to the hub.
func NewDefaultDispatcher(log *slog.Logger, hub contract.IEventHub, cache contract.IConferenceCache) *Dispatcher {
	return NewDispatcher(log).
		Register(event.NewConferenceAddedType, NewNewConferenceAddedHandler(hub)).
		Register(event.ParticipantsUpdatedType, NewParticipantsUpdatedHandler(log, hub, cache)).
		Register(event.AllocationUpdatedType, NewAllocationUpdatedHandler(hub))
}

func (d *Dispatcher) Handle(ctx context.Context, evt event.InternalEvent) error {
	h, ok := d.handlers[evt.EventName()]
	if !ok {
		return fmt.Errorf("%w: no handler for %s", errors.ErrInvalidRequest, evt.EventName())
	}
	if err := d.validator.Struct(evt); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	d.log.Debug("Handling internal event", "event", evt.EventName())
	return h.Handle(ctx, evt)
}

// Decode reads the JSON body of an internal event of the given name.
func Decode(name string, body []byte) (event.InternalEvent, error) {
	var (
		evt event.InternalEvent
		err error
	)
	switch name {
	case event.NewConferenceAddedType:
		var e event.NewConferenceAdded
		err = json.Unmarshal(body, &e)
		evt = e
	case event.ParticipantsUpdatedType:
		var e event.ParticipantsUpdated
		err = json.Unmarshal(body, &e)
		evt = e
	case event.AllocationUpdatedType:
		var e event.AllocationUpdated
		err = json.Unmarshal(body, &e)
		evt = e
	default:
		return nil, fmt.Errorf("%w: unknown internal event %q", errors.ErrInvalidRequest, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	return evt, nil
}

// notLoaded keeps an evicted conference out of the cache, it is loaded again on next use.
func notLoaded(context.Context) (*domain.Conference, error) { return nil, nil }

func invalidPayload(evt event.InternalEvent) error {
	return fmt.Errorf("%w: unexpected payload %T", errors.ErrInvalidRequest, evt)
}
