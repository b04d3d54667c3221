package access

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"ordersnapr.app/server/common/logger"
	"ordersnapr.app/server/internal/model"
)

// Flag is one module's enablement state for an organization.
type Flag struct {
	Enabled bool
	Config  json.RawMessage
}

// FlagSet is an organization's full module flag snapshot.
type FlagSet struct {
	OrganizationID int64
	flags          map[model.Module]Flag
	fetchedAt      time.Time
}

// ModuleEnabled falls back to the module's static default when the
// organization has no row for it.
func (fs *FlagSet) ModuleEnabled(m model.Module) bool {
	if fs == nil {
		return false
	}
	if f, ok := fs.flags[m]; ok {
		return f.Enabled
	}
	return m.DefaultEnabled()
}

// Config returns the module's config payload, nil when unset.
func (fs *FlagSet) Config(m model.Module) json.RawMessage {
	if fs == nil {
		return nil
	}
	return fs.flags[m].Config
}

// FetchedAt is the time the snapshot was read from the store.
func (fs *FlagSet) FetchedAt() time.Time {
	if fs == nil {
		return time.Time{}
	}
	return fs.fetchedAt
}

// FlagFetcher is the slice of the org feature store the cache needs.
type FlagFetcher interface {
	ListByOrganization(ctx context.Context, orgID int64) ([]model.OrgFeature, error)
}

// FlagCache serves per-organization flag snapshots with a soft/hard freshness
// policy. Within the soft window a snapshot is served as-is. Between soft and
// hard a stale snapshot is still served while one background refresh runs.
// Past the hard window the entry is discarded and the read refetches
// synchronously. Consistency is "eventually reflects the last successful
// fetch" - nothing stronger.
type FlagCache struct {
	fetcher FlagFetcher
	cache   *ttlcache.Cache[int64, *FlagSet]
	softTTL time.Duration
	hardTTL time.Duration
	now     func() time.Time

	mu         sync.Mutex
	refreshing map[int64]bool
}

// FlagCacheOption customizes a FlagCache; used by tests to inject a clock.
type FlagCacheOption func(*FlagCache)

// WithClock replaces the cache's time source.
func WithClock(now func() time.Time) FlagCacheOption {
	return func(c *FlagCache) {
		c.now = now
	}
}

func NewFlagCache(fetcher FlagFetcher, softTTL, hardTTL time.Duration, opts ...FlagCacheOption) *FlagCache {
	c := &FlagCache{
		fetcher: fetcher,
		softTTL: softTTL,
		hardTTL: hardTTL,
		now:     time.Now,
		cache: ttlcache.New[int64, *FlagSet](
			ttlcache.WithTTL[int64, *FlagSet](hardTTL),
			ttlcache.WithDisableTouchOnHit[int64, *FlagSet](),
		),
		refreshing: make(map[int64]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start runs the expired-entry janitor. Stop must be called on shutdown.
func (c *FlagCache) Start() {
	go c.cache.Start()
}

func (c *FlagCache) Stop() {
	c.cache.Stop()
}

// Get returns the organization's flag snapshot, refetching per the freshness
// policy. Errors only surface when there is no snapshot at all to serve.
func (c *FlagCache) Get(ctx context.Context, orgID int64) (*FlagSet, error) {
	item := c.cache.Get(orgID)
	if item != nil {
		fs := item.Value()
		age := c.now().Sub(fs.fetchedAt)

		switch {
		case age < c.softTTL:
			return fs, nil
		case age < c.hardTTL:
			// Soft-stale: serve what we have, refresh once in the background.
			c.refreshAsync(ctx, orgID)
			return fs, nil
		}
		// Hard-stale: fall through to a synchronous refetch. The janitor
		// usually evicts these first; the clock check covers the gap.
	}

	return c.fetch(ctx, orgID)
}

// Invalidate drops exactly one organization's entry. Called after an admin
// toggles a module, locally or via the cross-replica bus.
func (c *FlagCache) Invalidate(orgID int64) {
	c.cache.Delete(orgID)
}

func (c *FlagCache) fetch(ctx context.Context, orgID int64) (*FlagSet, error) {
	features, err := c.fetcher.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	flags := make(map[model.Module]Flag, len(features))
	for _, f := range features {
		flags[f.Module] = Flag{Enabled: f.Enabled, Config: f.Config}
	}

	fs := &FlagSet{
		OrganizationID: orgID,
		flags:          flags,
		fetchedAt:      c.now(),
	}
	c.cache.Set(orgID, fs, ttlcache.DefaultTTL)
	return fs, nil
}

// refreshAsync kicks off at most one background refresh per organization.
// A failed refresh keeps the stale snapshot in place and logs.
func (c *FlagCache) refreshAsync(ctx context.Context, orgID int64) {
	c.mu.Lock()
	if c.refreshing[orgID] {
		c.mu.Unlock()
		return
	}
	c.refreshing[orgID] = true
	c.mu.Unlock()

	// Detach from the request so an early client disconnect does not abort
	// the refresh.
	bgCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.refreshing, orgID)
			c.mu.Unlock()
		}()

		sc := logger.StartSpan(bgCtx, "access.flagcache.refresh")
		defer sc.End()
		refreshCtx := logger.WithLogFields(sc.Context(), logger.LogFields{
			Component:      "ordersnapr.access.flagcache",
			OrganizationID: logger.Ptr(orgID),
		})

		if _, err := c.fetch(refreshCtx, orgID); err != nil {
			sc.RecordError(err)
			slog.ErrorContext(refreshCtx, "background flag refresh failed, serving stale flags",
				"error", err,
			)
		}
	}()
}
