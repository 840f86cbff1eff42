// Package cache owns the in-memory Conference aggregates of the process.
package cache

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"hearing-hub/contract"
	"hearing-hub/domain"
	"hearing-hub/errors"
	"hearing-hub/observability"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ConferenceCache maps a conference id to its current Conference snapshot.
//
// Loads are single-flight per id: concurrent GetOrAdd calls for the same id share
// one loader invocation and receive the same pointer or the same error. A failed
// or cancelled load leaves the id unpopulated so the next call retries.
//
// Snapshots are never edited in place. Update swaps the pointer; Mutate clones,
// applies a change and swaps. Readers holding an older pointer keep their snapshot.
type ConferenceCache struct {
	log     *slog.Logger
	mu      sync.RWMutex
	entries map[uuid.UUID]*domain.Conference
	loads   singleflight.Group
	writes  sync.Map // uuid.UUID -> *sync.Mutex
}

var _ contract.IConferenceCache = (*ConferenceCache)(nil)

func NewConferenceCache(log *slog.Logger) *ConferenceCache {
	return &ConferenceCache{
		log:     log,
		entries: make(map[uuid.UUID]*domain.Conference),
	}
}

// Get never blocks on an in-flight load or mutation.
func (c *ConferenceCache) Get(conferenceID uuid.UUID) (*domain.Conference, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	conference, ok := c.entries[conferenceID]
	return conference, ok
}

func (c *ConferenceCache) GetOrAdd(ctx context.Context, conferenceID uuid.UUID, loader contract.Loader) (*domain.Conference, error) {
	for attempt := 0; ; attempt++ {
		if conference, ok := c.Get(conferenceID); ok {
			observability.ConferenceCacheLoads.WithLabelValues("hit").Inc()
			return conference, nil
		}

		result := c.loads.DoChan(conferenceID.String(), func() (any, error) {
			return c.load(ctx, conferenceID, loader)
		})

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-result:
			if res.Err == nil {
				return res.Val.(*domain.Conference), nil
			}
			// A shared flight started by a caller that gave up; ours is still alive, so try once more.
			if attempt == 0 && res.Shared && isContextError(res.Err) && ctx.Err() == nil {
				continue
			}
			return nil, res.Err
		}
	}
}

func (c *ConferenceCache) load(ctx context.Context, conferenceID uuid.UUID, loader contract.Loader) (*domain.Conference, error) {
	if conference, ok := c.Get(conferenceID); ok {
		return conference, nil
	}

	c.log.Debug("Loading conference", "conference_id", conferenceID)
	conference, err := loader(ctx)
	if err == nil && conference == nil {
		err = fmt.Errorf("%w: %s", errors.ErrConferenceNotFound, conferenceID)
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		observability.ConferenceCacheLoads.WithLabelValues("failed").Inc()
		c.log.Warn("Conference load failed", "conference_id", conferenceID, "error", err)
		return nil, err
	}

	observability.ConferenceCacheLoads.WithLabelValues("loaded").Inc()
	return c.storeIfAbsent(conferenceID, conference), nil
}

// storeIfAbsent keeps a value written by Update while the load was in flight.
func (c *ConferenceCache) storeIfAbsent(conferenceID uuid.UUID, conference *domain.Conference) *domain.Conference {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[conferenceID]; ok {
		return existing
	}
	c.entries[conferenceID] = conference
	return conference
}

func (c *ConferenceCache) Update(conference *domain.Conference) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[conference.ID] = conference
}

// Mutate applies fn to a clone of the current conference and stores the clone.
// Nothing is stored when fn fails or ctx is done by the time fn returns.
// Mutations of one conference are serialised, different conferences run in parallel.
func (c *ConferenceCache) Mutate(ctx context.Context, conferenceID uuid.UUID, loader contract.Loader,
	fn func(*domain.Conference) error) (*domain.Conference, error) {
	lock := c.writeLock(conferenceID)
	lock.Lock()
	defer lock.Unlock()

	current, err := c.GetOrAdd(ctx, conferenceID, loader)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.Update(next)
	return next, nil
}

// Remove forgets a closed conference. It waits for a running mutation of that
// conference to finish; the next GetOrAdd loads it again.
func (c *ConferenceCache) Remove(conferenceID uuid.UUID) {
	lock := c.writeLock(conferenceID)
	lock.Lock()
	defer lock.Unlock()

	c.mu.Lock()
	delete(c.entries, conferenceID)
	c.mu.Unlock()
	c.writes.Delete(conferenceID)
	c.log.Debug("Conference removed from cache", "conference_id", conferenceID)
}

func (c *ConferenceCache) writeLock(conferenceID uuid.UUID) *sync.Mutex {
	lock, _ := c.writes.LoadOrStore(conferenceID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func isContextError(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
