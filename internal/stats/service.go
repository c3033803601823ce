package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ntgptit/repeatwise/internal/srs"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Service serves rollups from a per-(user, date) cache. Entries older than
// the TTL are recomputed on demand; a stale read never outlives one TTL.
type Service struct {
	repo   Repository
	config Config
	clock  Clock

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	rollup   Rollup
	storedAt time.Time
}

// NewService creates a new Service.
func NewService(repo Repository, config Config, clock Clock) *Service {
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultConfig().CacheTTL
	}
	return &Service{
		repo:   repo,
		config: config,
		clock:  clock,
		cache:  make(map[string]cacheEntry),
	}
}

// GetDueCount returns how many of the user's items are due on or before the
// date, served from the cached rollup.
func (s *Service) GetDueCount(ctx context.Context, userID int64, date time.Time) (int, error) {
	rollup, err := s.GetRollup(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	return rollup.DueCount, nil
}

// GetRollup returns the user's rollup for the date, recomputing when the
// cached entry expired.
func (s *Service) GetRollup(ctx context.Context, userID int64, date time.Time) (Rollup, error) {
	day := dateOnly(date)
	key := fmt.Sprintf("%d:%s", userID, day.Format(time.DateOnly))
	now := s.clock.Now()

	s.mu.Lock()
	entry, ok := s.cache[key]
	s.mu.Unlock()
	if ok && now.Sub(entry.storedAt) < s.config.CacheTTL {
		return entry.rollup, nil
	}

	rollup, err := s.compute(ctx, userID, day, now)
	if err != nil {
		return Rollup{}, err
	}

	s.mu.Lock()
	s.cache[key] = cacheEntry{rollup: rollup, storedAt: now}
	s.mu.Unlock()

	slog.Debug("computed stats rollup",
		"user_id", userID,
		"date", day.Format(time.DateOnly),
		"due", rollup.DueCount,
		"new", rollup.NewCount,
		"mature", rollup.MatureCount)
	return rollup, nil
}

// Invalidate drops the user's cached entries, used after bulk mutations such
// as a cascade delete.
func (s *Service) Invalidate(userID int64) {
	prefix := fmt.Sprintf("%d:", userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.cache {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.cache, key)
		}
	}
}

func (s *Service) compute(ctx context.Context, userID int64, day, now time.Time) (Rollup, error) {
	due, err := s.repo.CountDue(ctx, userID, day)
	if err != nil {
		return Rollup{}, fmt.Errorf("repo.CountDue(%d) > %w", userID, err)
	}
	fresh, err := s.repo.CountNew(ctx, userID)
	if err != nil {
		return Rollup{}, fmt.Errorf("repo.CountNew(%d) > %w", userID, err)
	}
	mature, err := s.repo.CountMature(ctx, userID, srs.MatureBoxThreshold)
	if err != nil {
		return Rollup{}, fmt.Errorf("repo.CountMature(%d) > %w", userID, err)
	}

	return Rollup{
		UserID:      userID,
		Date:        day,
		DueCount:    due,
		NewCount:    fresh,
		MatureCount: mature,
		ComputedAt:  now,
	}, nil
}
