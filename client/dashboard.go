package client

import (
	"context"
	"sync"
	"time"

	"planner/cache"
	"planner/dto"
)

// DashboardFreshness is how long a fetched summary is reused.
const DashboardFreshness = 30 * time.Second

const dashboardKey = "summary"

// DashboardStore reuses the last dashboard summary while it is fresh.
// Concurrent Get calls on a stale store share one fetch.
type DashboardStore struct {
	client *Client
	cache  *cache.TTL[string, dto.DashboardSummary]
	fetch  sync.Mutex
}

func NewDashboardStore(c *Client) *DashboardStore {
	return &DashboardStore{
		client: c,
		cache:  cache.NewTTL[string, dto.DashboardSummary](DashboardFreshness),
	}
}

// WithClock replaces the wall clock, for tests.
func (s *DashboardStore) WithClock(now func() time.Time) *DashboardStore {
	s.cache.WithClock(now)
	return s
}

func (s *DashboardStore) Get(ctx context.Context) (dto.DashboardSummary, error) {
	if summary, ok := s.cache.Get(dashboardKey); ok {
		return summary, nil
	}

	s.fetch.Lock()
	defer s.fetch.Unlock()
	if summary, ok := s.cache.Get(dashboardKey); ok {
		return summary, nil
	}

	summary, err := s.client.Dashboard(ctx)
	if err != nil {
		return summary, err
	}
	s.cache.Set(dashboardKey, summary)
	return summary, nil
}

// Invalidate forces the next Get to refetch.
func (s *DashboardStore) Invalidate() {
	s.cache.Delete(dashboardKey)
}
