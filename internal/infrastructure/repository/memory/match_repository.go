package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/footballhub/matchday/internal/domain/match"
)

// MatchRepository is the in-memory match store used by tests and by the API
// when no database is configured.
type MatchRepository struct {
	mu    sync.RWMutex
	items map[match.Key]match.Match
	clock func() time.Time
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		items: make(map[match.Key]match.Match),
		clock: time.Now,
	}
}

// WithClock overrides the timestamp source. Test hook.
func (r *MatchRepository) WithClock(clock func() time.Time) *MatchRepository {
	if clock != nil {
		r.clock = clock
	}
	return r
}

func (r *MatchRepository) Upsert(_ context.Context, matches []match.Match) (match.UpsertResult, error) {
	var result match.UpsertResult
	now := r.clock().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range matches {
		if err := item.Validate(); err != nil {
			return match.UpsertResult{}, fmt.Errorf("invalid match %s vs %s: %w", item.Key.HomeTeam, item.Key.AwayTeam, err)
		}

		existing, ok := r.items[item.Key]
		if ok {
			item.CreatedAt = existing.CreatedAt
			item.UpdatedAt = now
			result.Updated++
		} else {
			item.CreatedAt = now
			item.UpdatedAt = now
			result.Inserted++
		}
		r.items[item.Key] = item
	}
	return result, nil
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make(map[string]struct{}, len(filter.Statuses))
	for _, status := range filter.Statuses {
		statuses[status] = struct{}{}
	}

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if filter.Competition != "" && item.Key.Competition != filter.Competition {
			continue
		}
		if len(statuses) > 0 {
			if _, ok := statuses[item.Status]; !ok {
				continue
			}
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Key.KickoffAt.Equal(out[j].Key.KickoffAt) {
			return out[i].Key.KickoffAt.Before(out[j].Key.KickoffAt)
		}
		if out[i].Key.Competition != out[j].Key.Competition {
			return out[i].Key.Competition < out[j].Key.Competition
		}
		return out[i].Key.HomeTeam < out[j].Key.HomeTeam
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MatchRepository) GetByKey(_ context.Context, key match.Key) (match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return item, nil
}

func (r *MatchRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
