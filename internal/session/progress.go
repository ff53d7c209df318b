package session

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/julianstephens/daylearn/internal/constants"
	"github.com/julianstephens/daylearn/internal/errors"
	"github.com/julianstephens/daylearn/internal/logger"
	"github.com/julianstephens/daylearn/internal/models"
	"github.com/julianstephens/daylearn/internal/storage"
)

// Snapshot is the persisted slice of a learner's session.
type Snapshot struct {
	DayIndex int
	Stats    models.Stats
}

// DefaultSnapshot is what a learner without saved progress starts from.
func DefaultSnapshot() Snapshot {
	return Snapshot{DayIndex: 0, Stats: models.DefaultStats()}
}

// ProgressStore loads and saves a learner's snapshot.
type ProgressStore interface {
	Load(userID string) (Snapshot, error)
	Save(userID string, snap Snapshot) error
	Clear(userID string) error
}

func CurrentDayKey(userID string) string {
	return constants.CurrentDayKeyPrefix + userID
}

func StatsKey(userID string) string {
	return constants.LearningStatsKeyPrefix + userID
}

// Progress persists snapshots into a key-value store, one pair of keys per user.
type Progress struct {
	kv   storage.KV
	days int
	mu   sync.Mutex
}

// NewProgress creates a Progress over kv. days is the catalog length used to clamp
// stored day pointers.
func NewProgress(kv storage.KV, days int) *Progress {
	return &Progress{kv: kv, days: days}
}

// Load returns the saved snapshot for userID. Missing keys yield defaults with no error.
// Unreadable or invalid values also yield defaults for that field, with an error wrapping
// errors.ErrPersistenceRead so the caller can tell the learner.
func (p *Progress) Load(userID string) (Snapshot, error) {
	snap := DefaultSnapshot()
	var errs []error

	day, err := p.loadDay(userID)
	if err != nil {
		errs = append(errs, err)
	} else {
		snap.DayIndex = day
	}

	stats, err := p.loadStats(userID)
	if err != nil {
		errs = append(errs, err)
	} else {
		snap.Stats = stats
	}

	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", errors.ErrPersistenceRead, stderrors.Join(errs...))
		logger.Warn("Falling back to default progress", "user", userID, "error", err)
		return snap, err
	}
	return snap, nil
}

func (p *Progress) loadDay(userID string) (int, error) {
	raw, err := p.kv.Get(CurrentDayKey(userID))
	if stderrors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	day, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid day pointer %q: %w", raw, err)
	}
	return p.clamp(day), nil
}

func (p *Progress) clamp(day int) int {
	if day < 0 {
		return 0
	}
	if p.days > 0 && day >= p.days {
		logger.Debug("Clamping saved day pointer", "day", day, "max", p.days-1)
		return p.days - 1
	}
	return day
}

func (p *Progress) loadStats(userID string) (models.Stats, error) {
	raw, err := p.kv.Get(StatsKey(userID))
	if stderrors.Is(err, storage.ErrNotFound) {
		return models.DefaultStats(), nil
	}
	if err != nil {
		return models.Stats{}, err
	}

	var stats models.Stats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return models.Stats{}, fmt.Errorf("invalid stats: %w", err)
	}
	if err := stats.Validate(); err != nil {
		return models.Stats{}, fmt.Errorf("invalid stats: %w", err)
	}
	return stats, nil
}

// Save writes both keys for userID. Concurrent saves are serialised; the last one wins.
func (p *Progress) Save(userID string, snap Snapshot) error {
	data, err := json.Marshal(snap.Stats)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistenceWrite, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.kv.Set(CurrentDayKey(userID), strconv.Itoa(snap.DayIndex)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistenceWrite, err)
	}
	if err := p.kv.Set(StatsKey(userID), string(data)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistenceWrite, err)
	}
	logger.Debug("Saved progress", "user", userID, "day", snap.DayIndex)
	return nil
}

// Clear removes the saved progress for userID.
func (p *Progress) Clear(userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, key := range []string{CurrentDayKey(userID), StatsKey(userID)} {
		if err := p.kv.Delete(key); err != nil && !stderrors.Is(err, storage.ErrNotFound) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errors.ErrPersistenceWrite, stderrors.Join(errs...))
	}
	return nil
}
