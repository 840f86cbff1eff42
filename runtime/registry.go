package runtime

import (
	"sync"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/observability"
)

type Set map[string]struct{}

// Registry tracks live connections and the groups they joined.
type Registry struct {
	mu           sync.RWMutex
	Sessions     map[string]contract.EventSink // map connection -> Sink
	GroupMembers map[domain.GroupKey]Set       // map group to connections
	memberships  map[string]map[domain.GroupKey]struct{}
}

var _ contract.IGroupRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		Sessions:     make(map[string]contract.EventSink),
		GroupMembers: make(map[domain.GroupKey]Set),
		memberships:  make(map[string]map[domain.GroupKey]struct{}),
	}
}

// GetSinksForGroup retrieves all active connections subscribed to a group.
// It performs a two-step lookup:
// 1. Identifies connection IDs associated with the group via GroupMembers.
// 2. Resolves those IDs into actual EventSinks using the Sessions map.
//
// A user connected from several tabs owns one sink per tab.
// Returns nil if the group doesn't exist or has no members.
func (r *Registry) GetSinksForGroup(group domain.GroupKey) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.GroupMembers[group]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for connectionID := range members {
		if sink, exists := r.Sessions[connectionID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Register records a connection. It receives nothing until it joins a group.
func (r *Registry) Register(connectionID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Sessions[connectionID]; !ok {
		observability.HubConnections.Inc()
	}
	r.Sessions[connectionID] = sink
	if _, ok := r.memberships[connectionID]; !ok {
		r.memberships[connectionID] = make(map[domain.GroupKey]struct{})
	}
}

// Join subscribes a registered connection to a group.
// If the group does not yet exist in the registry, it is initialized on the fly.
func (r *Registry) Join(connectionID string, group domain.GroupKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Sessions[connectionID]; !ok {
		return
	}
	if _, ok := r.GroupMembers[group]; !ok {
		r.GroupMembers[group] = make(Set)
	}
	r.GroupMembers[group][connectionID] = struct{}{}
	r.memberships[connectionID][group] = struct{}{}
}

func (r *Registry) Leave(connectionID string, group domain.GroupKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leave(connectionID, group)
}

// Unregister removes a connection from the registry and every group it joined.
// No empty sets are left in the group map.
func (r *Registry) Unregister(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Sessions[connectionID]; !ok {
		return
	}
	for group := range r.memberships[connectionID] {
		r.leave(connectionID, group)
	}
	delete(r.memberships, connectionID)
	delete(r.Sessions, connectionID)
	observability.HubConnections.Dec()
}

func (r *Registry) leave(connectionID string, group domain.GroupKey) {
	if memberships, ok := r.memberships[connectionID]; ok {
		delete(memberships, group)
	}
	if members, ok := r.GroupMembers[group]; ok {
		delete(members, connectionID)

		// If no one is left in the group, remove the group entry entirely
		if len(members) == 0 {
			delete(r.GroupMembers, group)
		}
	}
}
