package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	ants "github.com/panjf2000/ants/v2"

	"github.com/footballhub/matchday/internal/domain/match"
	"github.com/footballhub/matchday/internal/platform/cache"
	"github.com/footballhub/matchday/internal/platform/logging"
)

const matchCachePrefix = "matches:"

type IngestConfig struct {
	// Competitions maps provider competition codes to display names.
	Competitions       map[string]string
	TrailingWindowDays int
	LeadingWindowDays  int
	LiveWindow         time.Duration
	Workers            int
	// SeasonLabel overrides the season derived from the run clock when the
	// provider payload carries none.
	SeasonLabel string
}

// IngestReport summarizes one ingestion pass.
type IngestReport struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	Competitions int
	Dates        int
	TasksFailed  int
	Fetched      int
	Skipped      int
	Inserted     int
	Updated      int
	Degraded     bool
}

type IngestService struct {
	provider ScoreboardProvider
	matches  match.Repository
	store    *cache.Store
	cfg      IngestConfig
	logger   *logging.Logger
	now      func() time.Time
}

func NewIngestService(provider ScoreboardProvider, matches match.Repository, store *cache.Store, cfg IngestConfig, logger *logging.Logger) *IngestService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.TrailingWindowDays < 0 {
		cfg.TrailingWindowDays = 0
	}
	if cfg.LeadingWindowDays < 0 {
		cfg.LeadingWindowDays = 0
	}
	if cfg.LiveWindow <= 0 {
		cfg.LiveWindow = match.DefaultLiveWindow
	}

	return &IngestService{
		provider: provider,
		matches:  matches,
		store:    store,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the run clock. Test hook.
func (s *IngestService) WithClock(now func() time.Time) *IngestService {
	if now != nil {
		s.now = now
	}
	return s
}

type scoreboardTask struct {
	idx  int
	code string
	date string
}

type scoreboardTaskResult struct {
	idx   int
	code  string
	date  string
	items []ExternalMatch
	err   error
}

// Run executes one full ingestion pass: every configured competition crossed
// with every date in the sliding window, fetched concurrently, normalized,
// classified, and upserted as a single batch. A pass that yields zero events
// falls back to the built-in fixture set and flags the report as degraded.
func (s *IngestService) Run(ctx context.Context) (IngestReport, error) {
	ctx, span := startUsecaseSpan(ctx, "ingest.run")
	defer span.End()

	now := s.now().UTC()
	report := IngestReport{StartedAt: now}

	codes := make([]string, 0, len(s.cfg.Competitions))
	for code := range s.cfg.Competitions {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	dates := BuildDateWindow(now, s.cfg.TrailingWindowDays, s.cfg.LeadingWindowDays)
	report.Competitions = len(codes)
	report.Dates = len(dates)

	tasks := make([]scoreboardTask, 0, len(codes)*len(dates))
	for _, code := range codes {
		for _, date := range dates {
			tasks = append(tasks, scoreboardTask{idx: len(tasks), code: code, date: date})
		}
	}

	results, err := s.fetchAll(ctx, tasks)
	if err != nil {
		report.FinishedAt = s.now().UTC()
		return report, err
	}

	byKey := make(map[match.Key]match.Match, 256)
	for _, result := range results {
		if result.err != nil {
			report.TasksFailed++
			s.logger.WarnContext(ctx, "scoreboard fetch failed",
				"competition", result.code,
				"date", result.date,
				"error", result.err,
			)
			continue
		}
		for _, item := range result.items {
			normalized, ok := s.normalize(item, now)
			if !ok {
				report.Skipped++
				continue
			}
			report.Fetched++
			byKey[normalized.Key] = normalized
		}
	}

	batch := make([]match.Match, 0, len(byKey))
	for _, item := range byKey {
		batch = append(batch, item)
	}

	if len(batch) == 0 {
		report.Degraded = true
		s.logger.WarnContext(ctx, "ingestion produced no events, serving built-in fallback fixtures",
			"failed_tasks", report.TasksFailed,
			"total_tasks", len(tasks),
		)
		batch = FallbackMatches(now, s.seasonLabel(now))
	} else {
		s.hydrateLineups(ctx, batch)
	}

	sort.SliceStable(batch, func(i, j int) bool {
		if !batch[i].Key.KickoffAt.Equal(batch[j].Key.KickoffAt) {
			return batch[i].Key.KickoffAt.Before(batch[j].Key.KickoffAt)
		}
		if batch[i].Key.Competition != batch[j].Key.Competition {
			return batch[i].Key.Competition < batch[j].Key.Competition
		}
		return batch[i].Key.HomeTeam < batch[j].Key.HomeTeam
	})

	upserted, err := s.matches.Upsert(ctx, batch)
	report.FinishedAt = s.now().UTC()
	if err != nil {
		return report, fmt.Errorf("persist ingested matches: %w", err)
	}
	report.Inserted = upserted.Inserted
	report.Updated = upserted.Updated

	if s.store != nil {
		s.store.DeletePrefix(ctx, matchCachePrefix)
	}

	s.logger.InfoContext(ctx, "ingestion pass finished",
		"competitions", report.Competitions,
		"dates", report.Dates,
		"fetched", report.Fetched,
		"skipped", report.Skipped,
		"failed_tasks", report.TasksFailed,
		"inserted", report.Inserted,
		"updated", report.Updated,
		"degraded", report.Degraded,
	)
	return report, nil
}

func (s *IngestService) fetchAll(ctx context.Context, tasks []scoreboardTask) ([]scoreboardTaskResult, error) {
	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create ingest worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	resultCh := make(chan scoreboardTaskResult, len(tasks))

	for _, task := range tasks {
		task := task
		wg.Add(1)
		run := func() {
			defer wg.Done()
			items, fetchErr := s.provider.FetchScoreboard(ctx, task.code, task.date)
			resultCh <- scoreboardTaskResult{
				idx:   task.idx,
				code:  task.code,
				date:  task.date,
				items: items,
				err:   fetchErr,
			}
		}
		if submitErr := pool.Submit(run); submitErr != nil {
			run()
		}
	}

	wg.Wait()
	close(resultCh)

	results := make([]scoreboardTaskResult, 0, len(tasks))
	for result := range resultCh {
		results = append(results, result)
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].idx < results[j].idx })
	return results, nil
}

// normalize converts one raw provider event into a classified domain match.
func (s *IngestService) normalize(item ExternalMatch, now time.Time) (match.Match, bool) {
	homeTeam := strings.TrimSpace(item.HomeTeam)
	awayTeam := strings.TrimSpace(item.AwayTeam)
	if homeTeam == "" || awayTeam == "" || !item.KickoffParsed {
		return match.Match{}, false
	}

	competition := s.cfg.Competitions[item.CompetitionCode]
	if competition == "" {
		competition = item.CompetitionCode
	}

	season := strings.TrimSpace(item.Season)
	if season == "" {
		season = s.seasonLabel(now)
	}

	status := match.ClassifyStatus(match.StatusSignal{
		Completed:     item.StatusCompleted,
		TypeName:      item.StatusTypeName,
		State:         item.StatusState,
		KickoffAt:     item.KickoffAt,
		KickoffParsed: item.KickoffParsed,
		HomeScore:     item.HomeScore,
		AwayScore:     item.AwayScore,
	}, now, s.cfg.LiveWindow)

	out := match.Match{
		Key: match.Key{
			KickoffAt:   item.KickoffAt,
			HomeTeam:    homeTeam,
			AwayTeam:    awayTeam,
			Competition: competition,
		},
		ExternalID: item.ExternalID,
		Season:     season,
		Venue:      item.Venue,
		Status:     status,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		HomeLogo:   item.HomeLogo,
		AwayLogo:   item.AwayLogo,
	}
	if err := out.Validate(); err != nil {
		return match.Match{}, false
	}
	return out, true
}

// hydrateLineups fills starting lineups for live and finished matches from
// the summary endpoint. Lineup failures never fail the pass.
func (s *IngestService) hydrateLineups(ctx context.Context, batch []match.Match) {
	codeByName := make(map[string]string, len(s.cfg.Competitions))
	for code, name := range s.cfg.Competitions {
		codeByName[name] = code
	}

	for i := range batch {
		item := &batch[i]
		if item.Status == match.StatusScheduled || item.ExternalID == "" {
			continue
		}
		code, ok := codeByName[item.Key.Competition]
		if !ok {
			code = item.Key.Competition
		}

		lineups, err := s.provider.FetchLineups(ctx, code, item.ExternalID)
		if err != nil {
			s.logger.WarnContext(ctx, "lineup hydration failed",
				"competition", item.Key.Competition,
				"event_id", item.ExternalID,
				"error", err,
			)
			continue
		}
		item.Lineups = lineups
	}
}

func (s *IngestService) seasonLabel(now time.Time) string {
	if label := strings.TrimSpace(s.cfg.SeasonLabel); label != "" {
		return label
	}
	return DeriveSeasonLabel(now)
}
