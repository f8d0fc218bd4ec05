package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/footballhub/matchday/internal/domain/match"
	"github.com/footballhub/matchday/internal/platform/cache"
	"github.com/footballhub/matchday/internal/platform/logging"
)

// MatchService is the read side of the match store.
type MatchService struct {
	repo   match.Repository
	store  *cache.Store
	logger *logging.Logger
}

func NewMatchService(repo match.Repository, store *cache.Store, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{repo: repo, store: store, logger: logger}
}

// List returns matches ordered by kickoff. An empty store yields an empty
// list, not an error.
func (s *MatchService) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "match.list")
	defer span.End()

	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	for _, status := range filter.Statuses {
		switch status {
		case match.StatusScheduled, match.StatusLive, match.StatusFinished:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
	}

	if s.store == nil {
		return s.repo.List(ctx, filter)
	}

	key := listCacheKey(filter)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.repo.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}

	items, ok := value.([]match.Match)
	if !ok {
		return nil, fmt.Errorf("unexpected cache payload type %T", value)
	}
	return items, nil
}

func (s *MatchService) Count(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "match.count")
	defer span.End()
	return s.repo.Count(ctx)
}

func listCacheKey(filter match.ListFilter) string {
	return fmt.Sprintf("%slist:%s:%s:%d",
		matchCachePrefix,
		filter.Competition,
		strings.Join(filter.Statuses, ","),
		filter.Limit,
	)
}
